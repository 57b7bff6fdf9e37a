package gpp

const usTnVersion = 1

type UsTnSensitiveDataProcessing struct {
	RacialOrEthnicOrigin          Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexLifeOrSexualOrientation     Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsTnKnownChildSensitiveDataConsents struct {
	ProcessSensitiveDataFromKnownChild Consent
	SellPersonalDataFrom13To16         Consent
	ProcessPersonalDataFrom13To16      Consent
}

type UsTnCore struct {
	SharingNotice                    Notice
	SaleOptOutNotice                 Notice
	TargetedAdvertisingOptOutNotice  Notice
	SaleOptOut                       OptOut
	TargetedAdvertisingOptOut        OptOut
	SensitiveDataProcessing          UsTnSensitiveDataProcessing
	KnownChildSensitiveDataConsents  UsTnKnownChildSensitiveDataConsents
	MspaCoveredTransaction           bool
	MspaOptOutOptionMode             MspaMode
	MspaServiceProviderMode          MspaMode
}

// UsTn is the Tennessee Information Protection Act section. No
// published field-level schema was available for this state at the
// time this was written; its shape is extrapolated from the sibling
// UsCt section rather than grounded on a parsed reference source. Its
// one optional segment (type 1) carries the Global Privacy Control
// signal.
type UsTn struct {
	Core UsTnCore
	GPC  *bool
}

func (UsTn) SectionID() SectionID { return SectionUsTn }

func init() {
	registerSectionDecoder(SectionUsTn, func(body string) (Section, error) {
		return decodeUsTn(body)
	})
}

func decodeUsTn(body string) (UsTn, error) {
	var sec UsTn
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usTnVersion); err != nil {
		return sec, err
	}

	var core UsTnCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsTn, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsTn, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsTn, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsTn, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsTn, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexLifeOrSexualOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsTn, err)
		}
	}
	kc := &core.KnownChildSensitiveDataConsents
	for _, field := range []*Consent{
		&kc.ProcessSensitiveDataFromKnownChild, &kc.SellPersonalDataFrom13To16, &kc.ProcessPersonalDataFrom13To16,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsTn, err)
		}
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsTn, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsTn, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsTn, err)
	}
	sec.Core = core

	err = decodeOptionalSegments(segments[1:], 2, map[uint8]func(*DataReader) error{
		1: func(d *DataReader) error {
			gpc, err := d.readBool()
			if err != nil {
				return err
			}
			sec.GPC = &gpc
			return nil
		},
	})
	if err != nil {
		return sec, err
	}

	return sec, nil
}
