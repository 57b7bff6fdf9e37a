package gpp

import "testing"

func TestDecodeUsCoAllNotApplicable(t *testing.T) {
	sec, err := decodeUsCo("BAAAAEA")
	if err != nil {
		t.Fatalf("decodeUsCo() error = %v", err)
	}
	c := sec.Core
	if c.SharingNotice != NoticeNotApplicable || c.SaleOptOut != OptOutNotApplicable {
		t.Errorf("decodeUsCo() notices/optouts not all not-applicable: %+v", c)
	}
	if c.SensitiveDataProcessing.BiometricUniqueIdentification != ConsentNotApplicable {
		t.Errorf("SensitiveDataProcessing not all not-applicable: %+v", c.SensitiveDataProcessing)
	}
	if !c.MspaCoveredTransaction {
		t.Errorf("MspaCoveredTransaction = false, want true")
	}
}

func TestDecodeUsCoAllProvidedOrOptedOut(t *testing.T) {
	sec, err := decodeUsCo("BVVVVVg")
	if err != nil {
		t.Fatalf("decodeUsCo() error = %v", err)
	}
	c := sec.Core
	if c.SharingNotice != NoticeProvided {
		t.Errorf("SharingNotice = %v, want NoticeProvided", c.SharingNotice)
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

func TestDecodeUsCoWithGPCSegment(t *testing.T) {
	sec, err := decodeUsCo("BVVVVVg.YA")
	if err != nil {
		t.Fatalf("decodeUsCo() error = %v", err)
	}
	if sec.GPC == nil || !*sec.GPC {
		t.Errorf("GPC = %v, want pointer to true", sec.GPC)
	}
}
