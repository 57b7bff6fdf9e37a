package gpp

import (
	"encoding/base64"
	"strings"
)

// decodeBase64URL decodes the GPP wire alphabet: A-Z,a-z,0-9,-,_ with no
// padding. encoding/base64's RawURLEncoding implements this alphabet, but
// its quantum decoder rejects any input whose length is 1 mod 4 outright,
// even though a trailing group of 5 characters (30 bits, holding 4 bytes
// plus 6 leftover zero-padded bits) is a perfectly ordinary GPP segment
// length. Pad up to the next multiple of 4 with the zero-value char before
// decoding, then trim the output back down to the number of bytes the
// original, unpadded length actually encodes.
func decodeBase64URL(s string) ([]byte, error) {
	padded := s
	if r := len(s) % 4; r != 0 {
		padded += strings.Repeat("A", 4-r)
	}

	buf := make([]byte, base64.RawURLEncoding.DecodedLen(len(padded)))
	n, err := base64.RawURLEncoding.Decode(buf, []byte(padded))
	if err != nil {
		return nil, err
	}

	want := (len(s)*6 + 7) / 8
	if want < n {
		n = want
	}
	return buf[:n], nil
}
