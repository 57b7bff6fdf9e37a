package gpp

import "strconv"

// Notice, OptOut, Consent, and MspaMode are the 2-bit enumerations
// shared by every US state privacy section. An unrecognized 2-bit code
// (which the wire format never assigns a meaning to) decodes to the
// enum's first, "not applicable" variant rather than erroring — the
// fields these enums back are advisory notice/consent flags, not
// structural framing, so a forward-compatible unknown code should not
// fail the whole section.
type Notice uint8

const (
	NoticeNotApplicable Notice = iota
	NoticeProvided
	NoticeNotProvided
)

type OptOut uint8

const (
	OptOutNotApplicable OptOut = iota
	OptOutOptedOut
	OptOutDidNotOptOut
)

type Consent uint8

const (
	ConsentNotApplicable Consent = iota
	ConsentNoConsent
	ConsentConsent
)

// MspaMode covers both the mspa_opt_out_option_mode and
// mspa_service_provider_mode fields; some source material calls the
// same shape MspaSupport, but the semantics are identical so this
// package uses one type for both.
type MspaMode uint8

const (
	MspaModeNotApplicable MspaMode = iota
	MspaModeYes
	MspaModeNo
)

func readNotice(d *DataReader) (Notice, error) {
	v, err := d.readFixedInteger(2)
	if err != nil {
		return 0, err
	}
	if v > uint64(NoticeNotProvided) {
		return NoticeNotApplicable, nil
	}
	return Notice(v), nil
}

func readOptOut(d *DataReader) (OptOut, error) {
	v, err := d.readFixedInteger(2)
	if err != nil {
		return 0, err
	}
	if v > uint64(OptOutDidNotOptOut) {
		return OptOutNotApplicable, nil
	}
	return OptOut(v), nil
}

func readConsent(d *DataReader) (Consent, error) {
	v, err := d.readFixedInteger(2)
	if err != nil {
		return 0, err
	}
	if v > uint64(ConsentConsent) {
		return ConsentNotApplicable, nil
	}
	return Consent(v), nil
}

func readMspaMode(d *DataReader) (MspaMode, error) {
	v, err := d.readFixedInteger(2)
	if err != nil {
		return 0, err
	}
	if v > uint64(MspaModeNo) {
		return MspaModeNotApplicable, nil
	}
	return MspaMode(v), nil
}

// readMspaCoveredTransaction reads the 2-bit mspa_covered_transaction
// field, where 1 means true and 2 means false; any other code is a
// genuine error rather than a silent default, since a transaction is
// either covered or it isn't.
func readMspaCoveredTransaction(d *DataReader) (bool, error) {
	v, err := d.readFixedInteger(2)
	if err != nil {
		return false, err
	}
	switch v {
	case 1:
		return true, nil
	case 2:
		return false, nil
	default:
		return false, errInvalidFieldValue("1 or 2", strconv.FormatUint(v, 10))
	}
}
