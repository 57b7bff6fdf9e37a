package gpp

import (
	"errors"
	"testing"
)

func TestDecodeUsVaAllNotApplicable(t *testing.T) {
	sec, err := decodeUsVa("BAAAABA")
	if err != nil {
		t.Fatalf("decodeUsVa() error = %v", err)
	}
	c := sec.Core
	if c.SharingNotice != NoticeNotApplicable || c.SaleOptOut != OptOutNotApplicable {
		t.Errorf("decodeUsVa() notices/optouts not all not-applicable: %+v", c)
	}
	if c.SensitiveDataProcessing.GeneticUniqueIdentification != ConsentNotApplicable {
		t.Errorf("SensitiveDataProcessing not all not-applicable: %+v", c.SensitiveDataProcessing)
	}
	if !c.MspaCoveredTransaction {
		t.Errorf("MspaCoveredTransaction = false, want true")
	}
}

func TestDecodeUsVaAllProvidedOrOptedOut(t *testing.T) {
	sec, err := decodeUsVa("BVVVVVY")
	if err != nil {
		t.Fatalf("decodeUsVa() error = %v", err)
	}
	c := sec.Core
	if c.TargetedAdvertisingOptOutNotice != NoticeProvided {
		t.Errorf("TargetedAdvertisingOptOutNotice = %v, want NoticeProvided", c.TargetedAdvertisingOptOutNotice)
	}
	if c.SaleOptOut != OptOutOptedOut {
		t.Errorf("SaleOptOut = %v, want OptOutOptedOut", c.SaleOptOut)
	}
	if c.KnownChildSensitiveDataConsents != ConsentNoConsent {
		t.Errorf("KnownChildSensitiveDataConsents = %v, want ConsentNoConsent", c.KnownChildSensitiveDataConsents)
	}
	if c.MspaServiceProviderMode != MspaModeNo {
		t.Errorf("MspaServiceProviderMode = %v, want MspaModeNo", c.MspaServiceProviderMode)
	}
}

func TestDecodeUsVaRejectsExtraSegment(t *testing.T) {
	_, err := decodeUsVa("BAAAABA.YA")
	var decodeErr *SectionDecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Kind != UnknownSegmentType {
		t.Errorf("decodeUsVa() error = %v, want UnknownSegmentType", err)
	}
}
