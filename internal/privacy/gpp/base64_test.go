package gpp

import (
	"bytes"
	"testing"
)

func TestDecodeBase64URL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{name: "empty", input: "", want: []byte{}},
		{name: "single char group", input: "BQ", want: []byte{0x05, 0x00}},
		{name: "header-shaped, padded to a multiple of 4", input: "DBABMA", want: []byte{0x0c, 0x10, 0x01, 0x30, 0x00}},
		{name: "length 1 mod 4, the IAB's own example header", input: "DBABM", want: []byte{0x0c, 0x10, 0x01, 0x30}},
		{name: "invalid character", input: "!!!!", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeBase64URL(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("decodeBase64URL(%q) error = nil, want error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeBase64URL(%q) error = %v", tc.input, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("decodeBase64URL(%q) = %x, want %x", tc.input, got, tc.want)
			}
		})
	}
}
