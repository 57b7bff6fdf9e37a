package gpp

import "testing"

func TestUsNatValidateConsistent(t *testing.T) {
	u := UsNat{Core: UsNatCore{
		SharingNotice:                       NoticeNotApplicable,
		SaleOptOutNotice:                    NoticeNotApplicable,
		SharingOptOutNotice:                 NoticeNotApplicable,
		TargetedAdvertisingOptOutNotice:     NoticeNotApplicable,
		SensitiveDataProcessingOptOutNotice: NoticeNotApplicable,
		SensitiveDataLimitUseNotice:         NoticeNotApplicable,
		SaleOptOut:                          OptOutNotApplicable,
		SharingOptOut:                       OptOutNotApplicable,
		TargetedAdvertisingOptOut:           OptOutNotApplicable,
		MspaOptOutOptionMode:                MspaModeNotApplicable,
		MspaServiceProviderMode:             MspaModeNotApplicable,
	}}
	if errs := u.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestUsNatValidateNoticeOptOutMismatch(t *testing.T) {
	u := UsNat{Core: UsNatCore{
		SharingNotice:                       NoticeProvided,
		SaleOptOutNotice:                    NoticeNotApplicable,
		SharingOptOutNotice:                 NoticeNotApplicable,
		TargetedAdvertisingOptOutNotice:     NoticeNotApplicable,
		SensitiveDataProcessingOptOutNotice: NoticeNotApplicable,
		SensitiveDataLimitUseNotice:         NoticeNotApplicable,
		SaleOptOut:                          OptOutNotApplicable,
		SharingOptOut:                       OptOutNotApplicable,
		TargetedAdvertisingOptOut:           OptOutNotApplicable,
		MspaOptOutOptionMode:                MspaModeNotApplicable,
		MspaServiceProviderMode:             MspaModeNotApplicable,
	}}
	errs := u.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one error", errs)
	}
	if errs[0].Field1 != "sharing_notice" {
		t.Errorf("Validate()[0].Field1 = %q, want sharing_notice", errs[0].Field1)
	}
}

func TestUsNatValidateMspaInterlockViolation(t *testing.T) {
	u := UsNat{Core: UsNatCore{
		SharingNotice:                       NoticeNotApplicable,
		SaleOptOutNotice:                    NoticeNotApplicable,
		SharingOptOutNotice:                 NoticeNotApplicable,
		TargetedAdvertisingOptOutNotice:     NoticeNotApplicable,
		SensitiveDataProcessingOptOutNotice: NoticeNotApplicable,
		SensitiveDataLimitUseNotice:         NoticeNotApplicable,
		SaleOptOut:                          OptOutNotApplicable,
		SharingOptOut:                       OptOutNotApplicable,
		TargetedAdvertisingOptOut:           OptOutNotApplicable,
		MspaServiceProviderMode:             MspaModeYes,
		MspaOptOutOptionMode:                MspaModeYes,
	}}
	errs := u.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one error", errs)
	}
	if errs[0].Field1 != "mspa_service_provider_mode" || errs[0].Field2 != "mspa_opt_out_option_mode" {
		t.Errorf("Validate()[0] = %+v, want mspa interlock mismatch", errs[0])
	}
}

func TestUsCaValidateConsistent(t *testing.T) {
	u := UsCa{Core: UsCaCore{
		SaleOptOutNotice:            NoticeNotApplicable,
		SharingOptOutNotice:         NoticeNotApplicable,
		SensitiveDataLimitUseNotice: NoticeNotApplicable,
		SaleOptOut:                  OptOutNotApplicable,
		SharingOptOut:               OptOutNotApplicable,
		MspaOptOutOptionMode:        MspaModeNotApplicable,
		MspaServiceProviderMode:     MspaModeNotApplicable,
	}}
	if errs := u.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestUsCaValidateNoticeOptOutMismatch(t *testing.T) {
	// MspaServiceProviderMode=No skips the interlock's notice checks
	// entirely, isolating the notice/opt-out mismatch being tested.
	u := UsCa{Core: UsCaCore{
		SaleOptOutNotice:            NoticeNotProvided,
		SharingOptOutNotice:         NoticeNotApplicable,
		SensitiveDataLimitUseNotice: NoticeNotApplicable,
		SaleOptOut:                  OptOutDidNotOptOut,
		SharingOptOut:               OptOutNotApplicable,
		MspaOptOutOptionMode:        MspaModeYes,
		MspaServiceProviderMode:     MspaModeNo,
	}}
	errs := u.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one error", errs)
	}
	if errs[0].Field1 != "sale_optout_notice" {
		t.Errorf("Validate()[0].Field1 = %q, want sale_optout_notice", errs[0].Field1)
	}
}

func TestUsCtValidateMspaRequiresNoticesNotApplicable(t *testing.T) {
	u := UsCt{Core: UsCtCore{
		SaleOptOutNotice:                NoticeProvided,
		TargetedAdvertisingOptOutNotice: NoticeNotApplicable,
		SaleOptOut:                      OptOutOptedOut,
		TargetedAdvertisingOptOut:       OptOutNotApplicable,
		MspaServiceProviderMode:         MspaModeYes,
		MspaOptOutOptionMode:            MspaModeNo,
	}}
	errs := u.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one error", errs)
	}
	if errs[0].Field1 != "mspa_service_provider_mode" || errs[0].Field2 != "sale_optout_notice" {
		t.Errorf("Validate()[0] = %+v, want mspa_service_provider_mode vs sale_optout_notice", errs[0])
	}
}

func TestUsUtValidateConsistent(t *testing.T) {
	u := UsUt{Core: UsUtCore{
		SaleOptOutNotice:                    NoticeNotApplicable,
		TargetedAdvertisingOptOutNotice:     NoticeNotApplicable,
		SensitiveDataProcessingOptOutNotice: NoticeNotApplicable,
		SaleOptOut:                          OptOutNotApplicable,
		TargetedAdvertisingOptOut:           OptOutNotApplicable,
		MspaOptOutOptionMode:                MspaModeNotApplicable,
		MspaServiceProviderMode:             MspaModeNotApplicable,
	}}
	if errs := u.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestUsVaValidateMspaModeNoRequiresOptOutYes(t *testing.T) {
	u := UsVa{Core: UsVaCore{
		SaleOptOutNotice:                NoticeNotApplicable,
		TargetedAdvertisingOptOutNotice: NoticeNotApplicable,
		SaleOptOut:                      OptOutNotApplicable,
		TargetedAdvertisingOptOut:       OptOutNotApplicable,
		MspaServiceProviderMode:         MspaModeNo,
		MspaOptOutOptionMode:            MspaModeNo,
	}}
	errs := u.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one error", errs)
	}
	if errs[0].Field1 != "mspa_service_provider_mode" || errs[0].Field2 != "mspa_opt_out_option_mode" {
		t.Errorf("Validate()[0] = %+v, want mspa interlock mismatch", errs[0])
	}
}
