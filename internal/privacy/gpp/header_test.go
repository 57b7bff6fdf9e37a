package gpp

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseHeader(t *testing.T) {
	// "DBABM" is the IAB's own example header for a GPP string
	// declaring a single TCF EU v2 section (id 2). Its length is 1 mod 4,
	// the case a naive base64url decode rejects outright.
	h, err := parseHeader("DBABM")
	if err != nil {
		t.Fatalf("parseHeader() error = %v", err)
	}
	if h.Version != 1 {
		t.Errorf("Version = %d, want 1", h.Version)
	}
	want := []SectionID{SectionTcfEuV2}
	if !reflect.DeepEqual(h.SectionIDs, want) {
		t.Errorf("SectionIDs = %v, want %v", h.SectionIDs, want)
	}
}

func TestParseHeaderEmpty(t *testing.T) {
	_, err := parseHeader("")
	if !errors.Is(err, ErrNoHeaderFound) {
		t.Errorf("parseHeader(\"\") error = %v, want ErrNoHeaderFound", err)
	}
}

func TestParseHeaderWrongType(t *testing.T) {
	// Type tag 0 instead of the required 3: "AAAAAA" -> first 6 bits zero.
	_, err := parseHeader("AAAAAA")
	var decodeErr *GPPDecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Kind != InvalidHeaderType {
		t.Errorf("parseHeader(\"AAAAAA\") error = %v, want InvalidHeaderType", err)
	}
}
