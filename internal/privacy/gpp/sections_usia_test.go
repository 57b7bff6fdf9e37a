package gpp

import "testing"

func TestDecodeUsIaAllNotApplicable(t *testing.T) {
	sec, err := decodeUsIa("BAAAABA")
	if err != nil {
		t.Fatalf("decodeUsIa() error = %v", err)
	}
	c := sec.Core
	if c.SharingNotice != NoticeNotApplicable || c.SaleOptOut != OptOutNotApplicable {
		t.Errorf("decodeUsIa() notices/optouts not all not-applicable: %+v", c)
	}
	if !c.MspaCoveredTransaction {
		t.Errorf("MspaCoveredTransaction = false, want true")
	}
}

func TestDecodeUsIaAllProvidedOrOptedOut(t *testing.T) {
	sec, err := decodeUsIa("BVVVVVY")
	if err != nil {
		t.Fatalf("decodeUsIa() error = %v", err)
	}
	c := sec.Core
	if c.SensitiveDataProcessing.SexOrientation != ConsentNoConsent {
		t.Errorf("SexOrientation = %v, want ConsentNoConsent", c.SensitiveDataProcessing.SexOrientation)
	}
	if c.KnownChildSensitiveDataConsents != ConsentNoConsent {
		t.Errorf("KnownChildSensitiveDataConsents = %v, want ConsentNoConsent", c.KnownChildSensitiveDataConsents)
	}
	if c.MspaServiceProviderMode != MspaModeNo {
		t.Errorf("MspaServiceProviderMode = %v, want MspaModeNo", c.MspaServiceProviderMode)
	}
}

func TestDecodeUsIaWithGPCSegment(t *testing.T) {
	sec, err := decodeUsIa("BVVVVVY.YA")
	if err != nil {
		t.Fatalf("decodeUsIa() error = %v", err)
	}
	if sec.GPC == nil || !*sec.GPC {
		t.Errorf("GPC = %v, want pointer to true", sec.GPC)
	}
}
