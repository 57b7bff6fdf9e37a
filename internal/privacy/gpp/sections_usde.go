package gpp

const usDeVersion = 1

type UsDeSensitiveDataProcessing struct {
	RacialOrEthnicOrigin          Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexOrientation                 Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsDeCore struct {
	SharingNotice                    Notice
	SaleOptOutNotice                 Notice
	TargetedAdvertisingOptOutNotice  Notice
	SaleOptOut                       OptOut
	TargetedAdvertisingOptOut        OptOut
	SensitiveDataProcessing          UsDeSensitiveDataProcessing
	KnownChildSensitiveDataConsents  Consent
	AdditionalDataProcessingConsent  Consent
	MspaCoveredTransaction           bool
	MspaOptOutOptionMode             MspaMode
	MspaServiceProviderMode          MspaMode
}

// UsDe is the Delaware Personal Data Privacy Act section. No published
// field-level schema was available for this state at the time this was
// written; its shape is extrapolated from the other 2024-era state laws
// (UsNe, UsNj) rather than grounded on a parsed reference source.
type UsDe struct {
	Core UsDeCore
	GPC  *bool
}

func (UsDe) SectionID() SectionID { return SectionUsDe }

func init() {
	registerSectionDecoder(SectionUsDe, func(body string) (Section, error) {
		return decodeUsDe(body)
	})
}

func decodeUsDe(body string) (UsDe, error) {
	var sec UsDe
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usDeVersion); err != nil {
		return sec, err
	}

	var core UsDeCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsDe, err)
		}
	}
	if core.KnownChildSensitiveDataConsents, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	if core.AdditionalDataProcessingConsent, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsDe, err)
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
