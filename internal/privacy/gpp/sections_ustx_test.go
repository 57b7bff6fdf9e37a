package gpp

import "testing"

func TestDecodeUsTxAllNotApplicable(t *testing.T) {
	sec, err := decodeUsTx("BAAAAAQA")
	if err != nil {
		t.Fatalf("decodeUsTx() error = %v", err)
	}
	c := sec.Core
	if c.SharingNotice != NoticeNotApplicable || c.SaleOptOut != OptOutNotApplicable {
		t.Errorf("decodeUsTx() notices/optouts not all not-applicable: %+v", c)
	}
	if c.AdditionalDataProcessingConsent != ConsentNotApplicable {
		t.Errorf("AdditionalDataProcessingConsent = %v, want ConsentNotApplicable", c.AdditionalDataProcessingConsent)
	}
	if !c.MspaCoveredTransaction {
		t.Errorf("MspaCoveredTransaction = false, want true")
	}
}

func TestDecodeUsTxAllProvidedOrOptedOut(t *testing.T) {
	sec, err := decodeUsTx("BVVVVVWA")
	if err != nil {
		t.Fatalf("decodeUsTx() error = %v", err)
	}
	c := sec.Core
	if c.TargetedAdvertisingOptOutNotice != NoticeProvided {
		t.Errorf("TargetedAdvertisingOptOutNotice = %v, want NoticeProvided", c.TargetedAdvertisingOptOutNotice)
	}
	if c.SensitiveDataProcessing.CitizenshipOrImmigrationStatus != ConsentNoConsent {
		t.Errorf("CitizenshipOrImmigrationStatus = %v, want ConsentNoConsent", c.SensitiveDataProcessing.CitizenshipOrImmigrationStatus)
	}
	if c.AdditionalDataProcessingConsent != ConsentNoConsent {
		t.Errorf("AdditionalDataProcessingConsent = %v, want ConsentNoConsent", c.AdditionalDataProcessingConsent)
	}
	if c.MspaServiceProviderMode != MspaModeNo {
		t.Errorf("MspaServiceProviderMode = %v, want MspaModeNo", c.MspaServiceProviderMode)
	}
}

func TestDecodeUsTxWithGPCSegment(t *testing.T) {
	sec, err := decodeUsTx("BVVVVVWA.YA")
	if err != nil {
		t.Fatalf("decodeUsTx() error = %v", err)
	}
	if sec.GPC == nil || !*sec.GPC {
		t.Errorf("GPC = %v, want pointer to true", sec.GPC)
	}
}
