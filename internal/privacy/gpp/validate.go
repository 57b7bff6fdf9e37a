package gpp

import "fmt"

// ValidationError flags two field values whose combination a CMP
// should never produce together. The wire format does not prevent an
// inconsistent combination from being encoded, so Validate methods
// exist to catch it after the fact; nothing in this package calls them
// implicitly.
type ValidationError struct {
	Field1 string
	Value1 uint8
	Field2 string
	Value2 uint8
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s=%d is inconsistent with %s=%d", e.Field1, e.Value1, e.Field2, e.Value2)
}

func newValidationError(field1 string, value1 uint8, field2 string, value2 uint8) ValidationError {
	return ValidationError{Field1: field1, Value1: value1, Field2: field2, Value2: value2}
}

// isNoticeAndOptOutCombinationOK mirrors the interlock the IAB CMP API
// encoder enforces between a notice field and the opt-out it governs:
// no notice pairs with no opt-out choice, a provided notice pairs with
// any opt-out choice having been made, and a withheld notice only
// pairs with an opted-out consumer.
func isNoticeAndOptOutCombinationOK(notice Notice, optOut OptOut) bool {
	switch {
	case notice == NoticeNotApplicable && optOut == OptOutNotApplicable:
		return true
	case notice == NoticeProvided && optOut != OptOutNotApplicable:
		return true
	case notice == NoticeNotProvided && optOut == OptOutOptedOut:
		return true
	default:
		return false
	}
}

// mspaInterlockNotices collects the notice fields whose values are
// constrained by a section's MSPA service-provider mode.
type mspaInterlockNotices struct {
	saleOptOutNotice              Notice
	sharingOptOutNotice           *Notice
	targetedAdvertisingOptOutNotice *Notice
	sensitiveDataLimitUseNotice   *Notice
}

func checkMspaInterlock(serviceProviderMode, optOutOptionMode MspaMode, notices mspaInterlockNotices) []ValidationError {
	var errs []ValidationError

	requireNotApplicable := func(name string, notice *Notice) {
		if notice != nil && *notice != NoticeNotApplicable {
			errs = append(errs, newValidationError(
				"mspa_service_provider_mode", uint8(serviceProviderMode), name, uint8(*notice)))
		}
	}

	switch serviceProviderMode {
	case MspaModeNotApplicable:
		requireNotApplicable("sale_optout_notice", &notices.saleOptOutNotice)
		requireNotApplicable("sharing_optout_notice", notices.sharingOptOutNotice)
		requireNotApplicable("targeted_advertising_optout_notice", notices.targetedAdvertisingOptOutNotice)
		requireNotApplicable("sensitive_data_limit_use_notice", notices.sensitiveDataLimitUseNotice)
	case MspaModeYes:
		if optOutOptionMode != MspaModeNo {
			errs = append(errs, newValidationError(
				"mspa_service_provider_mode", uint8(serviceProviderMode),
				"mspa_opt_out_option_mode", uint8(optOutOptionMode)))
		}
		requireNotApplicable("sale_optout_notice", &notices.saleOptOutNotice)
		requireNotApplicable("sharing_optout_notice", notices.sharingOptOutNotice)
		requireNotApplicable("targeted_advertising_optout_notice", notices.targetedAdvertisingOptOutNotice)
		requireNotApplicable("sensitive_data_limit_use_notice", notices.sensitiveDataLimitUseNotice)
	case MspaModeNo:
		if optOutOptionMode != MspaModeYes {
			errs = append(errs, newValidationError(
				"mspa_service_provider_mode", uint8(serviceProviderMode),
				"mspa_opt_out_option_mode", uint8(optOutOptionMode)))
		}
	}

	return errs
}

// Validate checks the consistency of already-decoded field values
// against the notice/opt-out/MSPA interlock rules the IAB CMP API
// encoder enforces. A decoded UsNat section can still fail Validate:
// the wire format does not prevent it.
func (u UsNat) Validate() []ValidationError {
	var errs []ValidationError
	c := u.Core

	if !isNoticeAndOptOutCombinationOK(c.SharingNotice, c.SharingOptOut) {
		errs = append(errs, newValidationError(
			"sharing_notice", uint8(c.SharingNotice), "sharing_optout", uint8(c.SharingOptOut)))
	}
	if !isNoticeAndOptOutCombinationOK(c.SharingOptOutNotice, c.SharingOptOut) {
		errs = append(errs, newValidationError(
			"sharing_optout_notice", uint8(c.SharingOptOutNotice), "sharing_optout", uint8(c.SharingOptOut)))
	}
	if !isNoticeAndOptOutCombinationOK(c.SaleOptOutNotice, c.SaleOptOut) {
		errs = append(errs, newValidationError(
			"sale_optout_notice", uint8(c.SaleOptOutNotice), "sale_optout", uint8(c.SaleOptOut)))
	}
	if !isNoticeAndOptOutCombinationOK(c.TargetedAdvertisingOptOutNotice, c.TargetedAdvertisingOptOut) {
		errs = append(errs, newValidationError(
			"targeted_advertising_optout_notice", uint8(c.TargetedAdvertisingOptOutNotice),
			"targeted_advertising_optout", uint8(c.TargetedAdvertisingOptOut)))
	}

	errs = append(errs, checkMspaInterlock(c.MspaServiceProviderMode, c.MspaOptOutOptionMode, mspaInterlockNotices{
		saleOptOutNotice:                c.SaleOptOutNotice,
		sharingOptOutNotice:             &c.SharingOptOutNotice,
		targetedAdvertisingOptOutNotice: nil,
		sensitiveDataLimitUseNotice:     &c.SensitiveDataLimitUseNotice,
	})...)

	return errs
}

// Validate checks UsCa's notice/opt-out and MSPA interlock rules, by
// analogy with UsNat's.
func (u UsCa) Validate() []ValidationError {
	var errs []ValidationError
	c := u.Core

	if !isNoticeAndOptOutCombinationOK(c.SaleOptOutNotice, c.SaleOptOut) {
		errs = append(errs, newValidationError(
			"sale_optout_notice", uint8(c.SaleOptOutNotice), "sale_optout", uint8(c.SaleOptOut)))
	}
	if !isNoticeAndOptOutCombinationOK(c.SharingOptOutNotice, c.SharingOptOut) {
		errs = append(errs, newValidationError(
			"sharing_optout_notice", uint8(c.SharingOptOutNotice), "sharing_optout", uint8(c.SharingOptOut)))
	}

	errs = append(errs, checkMspaInterlock(c.MspaServiceProviderMode, c.MspaOptOutOptionMode, mspaInterlockNotices{
		saleOptOutNotice:              c.SaleOptOutNotice,
		sharingOptOutNotice:           &c.SharingOptOutNotice,
		sensitiveDataLimitUseNotice:   &c.SensitiveDataLimitUseNotice,
	})...)

	return errs
}

// Validate checks UsCt's notice/opt-out and MSPA interlock rules, by
// analogy with UsNat's.
func (u UsCt) Validate() []ValidationError {
	var errs []ValidationError
	c := u.Core

	if !isNoticeAndOptOutCombinationOK(c.SaleOptOutNotice, c.SaleOptOut) {
		errs = append(errs, newValidationError(
			"sale_optout_notice", uint8(c.SaleOptOutNotice), "sale_optout", uint8(c.SaleOptOut)))
	}
	if !isNoticeAndOptOutCombinationOK(c.TargetedAdvertisingOptOutNotice, c.TargetedAdvertisingOptOut) {
		errs = append(errs, newValidationError(
			"targeted_advertising_optout_notice", uint8(c.TargetedAdvertisingOptOutNotice),
			"targeted_advertising_optout", uint8(c.TargetedAdvertisingOptOut)))
	}

	errs = append(errs, checkMspaInterlock(c.MspaServiceProviderMode, c.MspaOptOutOptionMode, mspaInterlockNotices{
		saleOptOutNotice:                c.SaleOptOutNotice,
		targetedAdvertisingOptOutNotice: &c.TargetedAdvertisingOptOutNotice,
	})...)

	return errs
}

// Validate checks UsUt's notice/opt-out and MSPA interlock rules, by
// analogy with UsNat's.
func (u UsUt) Validate() []ValidationError {
	var errs []ValidationError
	c := u.Core

	if !isNoticeAndOptOutCombinationOK(c.SaleOptOutNotice, c.SaleOptOut) {
		errs = append(errs, newValidationError(
			"sale_optout_notice", uint8(c.SaleOptOutNotice), "sale_optout", uint8(c.SaleOptOut)))
	}
	if !isNoticeAndOptOutCombinationOK(c.TargetedAdvertisingOptOutNotice, c.TargetedAdvertisingOptOut) {
		errs = append(errs, newValidationError(
			"targeted_advertising_optout_notice", uint8(c.TargetedAdvertisingOptOutNotice),
			"targeted_advertising_optout", uint8(c.TargetedAdvertisingOptOut)))
	}

	errs = append(errs, checkMspaInterlock(c.MspaServiceProviderMode, c.MspaOptOutOptionMode, mspaInterlockNotices{
		saleOptOutNotice:                c.SaleOptOutNotice,
		targetedAdvertisingOptOutNotice: &c.TargetedAdvertisingOptOutNotice,
		sensitiveDataLimitUseNotice:     &c.SensitiveDataProcessingOptOutNotice,
	})...)

	return errs
}

// Validate checks UsVa's notice/opt-out and MSPA interlock rules, by
// analogy with UsNat's.
func (u UsVa) Validate() []ValidationError {
	var errs []ValidationError
	c := u.Core

	if !isNoticeAndOptOutCombinationOK(c.SaleOptOutNotice, c.SaleOptOut) {
		errs = append(errs, newValidationError(
			"sale_optout_notice", uint8(c.SaleOptOutNotice), "sale_optout", uint8(c.SaleOptOut)))
	}
	if !isNoticeAndOptOutCombinationOK(c.TargetedAdvertisingOptOutNotice, c.TargetedAdvertisingOptOut) {
		errs = append(errs, newValidationError(
			"targeted_advertising_optout_notice", uint8(c.TargetedAdvertisingOptOutNotice),
			"targeted_advertising_optout", uint8(c.TargetedAdvertisingOptOut)))
	}

	errs = append(errs, checkMspaInterlock(c.MspaServiceProviderMode, c.MspaOptOutOptionMode, mspaInterlockNotices{
		saleOptOutNotice:                c.SaleOptOutNotice,
		targetedAdvertisingOptOutNotice: &c.TargetedAdvertisingOptOutNotice,
	})...)

	return errs
}
