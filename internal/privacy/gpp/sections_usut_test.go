package gpp

import (
	"errors"
	"testing"
)

func TestDecodeUsUtAllNotApplicable(t *testing.T) {
	sec, err := decodeUsUt("BAAAAAQA")
	if err != nil {
		t.Fatalf("decodeUsUt() error = %v", err)
	}
	c := sec.Core
	if c.SharingNotice != NoticeNotApplicable || c.SaleOptOut != OptOutNotApplicable {
		t.Errorf("decodeUsUt() notices/optouts not all not-applicable: %+v", c)
	}
	if c.SensitiveDataProcessing.SexualOrientation != ConsentNotApplicable {
		t.Errorf("SensitiveDataProcessing not all not-applicable: %+v", c.SensitiveDataProcessing)
	}
	if !c.MspaCoveredTransaction {
		t.Errorf("MspaCoveredTransaction = false, want true")
	}
}

func TestDecodeUsUtAllProvidedOrOptedOut(t *testing.T) {
	sec, err := decodeUsUt("BVVVVVWA")
	if err != nil {
		t.Fatalf("decodeUsUt() error = %v", err)
	}
	c := sec.Core
	if c.SensitiveDataProcessingOptOutNotice != NoticeProvided {
		t.Errorf("SensitiveDataProcessingOptOutNotice = %v, want NoticeProvided", c.SensitiveDataProcessingOptOutNotice)
	}
	if c.TargetedAdvertisingOptOut != OptOutOptedOut {
		t.Errorf("TargetedAdvertisingOptOut = %v, want OptOutOptedOut", c.TargetedAdvertisingOptOut)
	}
	if c.KnownChildSensitiveDataConsents != ConsentNoConsent {
		t.Errorf("KnownChildSensitiveDataConsents = %v, want ConsentNoConsent", c.KnownChildSensitiveDataConsents)
	}
	if c.MspaServiceProviderMode != MspaModeNo {
		t.Errorf("MspaServiceProviderMode = %v, want MspaModeNo", c.MspaServiceProviderMode)
	}
}

func TestDecodeUsUtRejectsExtraSegment(t *testing.T) {
	// UsUt has no optional segments; any trailing segment is rejected.
	_, err := decodeUsUt("BAAAAAQA.YA")
	var decodeErr *SectionDecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Kind != UnknownSegmentType {
		t.Errorf("decodeUsUt() error = %v, want UnknownSegmentType", err)
	}
}
