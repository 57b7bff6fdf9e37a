package gpp

import (
	"errors"
	"testing"
)

func TestReadNotice(t *testing.T) {
	cases := []struct {
		bits string
		want Notice
	}{
		{"00", NoticeNotApplicable},
		{"01", NoticeProvided},
		{"10", NoticeNotProvided},
		{"11", NoticeNotApplicable}, // unassigned code defaults to 0
	}
	for _, c := range cases {
		d := NewDataReader(bitsToBytes(c.bits))
		got, err := readNotice(d)
		if err != nil {
			t.Fatalf("readNotice(%q) error = %v", c.bits, err)
		}
		if got != c.want {
			t.Errorf("readNotice(%q) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestReadOptOut(t *testing.T) {
	cases := []struct {
		bits string
		want OptOut
	}{
		{"00", OptOutNotApplicable},
		{"01", OptOutOptedOut},
		{"10", OptOutDidNotOptOut},
		{"11", OptOutNotApplicable},
	}
	for _, c := range cases {
		d := NewDataReader(bitsToBytes(c.bits))
		got, err := readOptOut(d)
		if err != nil {
			t.Fatalf("readOptOut(%q) error = %v", c.bits, err)
		}
		if got != c.want {
			t.Errorf("readOptOut(%q) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestReadConsent(t *testing.T) {
	cases := []struct {
		bits string
		want Consent
	}{
		{"00", ConsentNotApplicable},
		{"01", ConsentNoConsent},
		{"10", ConsentConsent},
		{"11", ConsentNotApplicable},
	}
	for _, c := range cases {
		d := NewDataReader(bitsToBytes(c.bits))
		got, err := readConsent(d)
		if err != nil {
			t.Fatalf("readConsent(%q) error = %v", c.bits, err)
		}
		if got != c.want {
			t.Errorf("readConsent(%q) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestReadMspaMode(t *testing.T) {
	cases := []struct {
		bits string
		want MspaMode
	}{
		{"00", MspaModeNotApplicable},
		{"01", MspaModeYes},
		{"10", MspaModeNo},
		{"11", MspaModeNotApplicable},
	}
	for _, c := range cases {
		d := NewDataReader(bitsToBytes(c.bits))
		got, err := readMspaMode(d)
		if err != nil {
			t.Fatalf("readMspaMode(%q) error = %v", c.bits, err)
		}
		if got != c.want {
			t.Errorf("readMspaMode(%q) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestReadMspaCoveredTransaction(t *testing.T) {
	d := NewDataReader(bitsToBytes("01"))
	got, err := readMspaCoveredTransaction(d)
	if err != nil || !got {
		t.Fatalf("readMspaCoveredTransaction(01) = (%v, %v), want (true, nil)", got, err)
	}

	d = NewDataReader(bitsToBytes("10"))
	got, err = readMspaCoveredTransaction(d)
	if err != nil || got {
		t.Fatalf("readMspaCoveredTransaction(10) = (%v, %v), want (false, nil)", got, err)
	}

	d = NewDataReader(bitsToBytes("00"))
	_, err = readMspaCoveredTransaction(d)
	var decodeErr *SectionDecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Kind != InvalidFieldValue {
		t.Errorf("readMspaCoveredTransaction(00) error = %v, want InvalidFieldValue", err)
	}
}
