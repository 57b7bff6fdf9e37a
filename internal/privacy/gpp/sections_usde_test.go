package gpp

import "testing"

func TestDecodeUsDeAllNotApplicable(t *testing.T) {
	sec, err := decodeUsDe("BAAAAAQA")
	if err != nil {
		t.Fatalf("decodeUsDe() error = %v", err)
	}
	c := sec.Core
	if c.SharingNotice != NoticeNotApplicable || c.SaleOptOut != OptOutNotApplicable {
		t.Errorf("decodeUsDe() notices/optouts not all not-applicable: %+v", c)
	}
	if c.AdditionalDataProcessingConsent != ConsentNotApplicable {
		t.Errorf("AdditionalDataProcessingConsent = %v, want ConsentNotApplicable", c.AdditionalDataProcessingConsent)
	}
	if !c.MspaCoveredTransaction {
		t.Errorf("MspaCoveredTransaction = false, want true")
	}
}

func TestDecodeUsDeAllProvidedOrOptedOut(t *testing.T) {
	sec, err := decodeUsDe("BVVVVVWA")
	if err != nil {
		t.Fatalf("decodeUsDe() error = %v", err)
	}
	c := sec.Core
	if c.TargetedAdvertisingOptOutNotice != NoticeProvided {
		t.Errorf("TargetedAdvertisingOptOutNotice = %v, want NoticeProvided", c.TargetedAdvertisingOptOutNotice)
	}
	if c.SensitiveDataProcessing.GeneticUniqueIdentification != ConsentNoConsent {
		t.Errorf("GeneticUniqueIdentification = %v, want ConsentNoConsent", c.SensitiveDataProcessing.GeneticUniqueIdentification)
	}
	if c.AdditionalDataProcessingConsent != ConsentNoConsent {
		t.Errorf("AdditionalDataProcessingConsent = %v, want ConsentNoConsent", c.AdditionalDataProcessingConsent)
	}
	if c.MspaServiceProviderMode != MspaModeNo {
		t.Errorf("MspaServiceProviderMode = %v, want MspaModeNo", c.MspaServiceProviderMode)
	}
}

func TestDecodeUsDeWithGPCSegment(t *testing.T) {
	sec, err := decodeUsDe("BVVVVVWA.YA")
	if err != nil {
		t.Fatalf("decodeUsDe() error = %v", err)
	}
	if sec.GPC == nil || !*sec.GPC {
		t.Errorf("GPC = %v, want pointer to true", sec.GPC)
	}
}
