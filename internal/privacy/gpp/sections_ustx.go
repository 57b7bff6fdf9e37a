package gpp

const usTxVersion = 1

type UsTxSensitiveDataProcessing struct {
	RacialOrEthnicOrigin          Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexOrientation                 Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsTxCore struct {
	SharingNotice                    Notice
	SaleOptOutNotice                 Notice
	TargetedAdvertisingOptOutNotice  Notice
	SaleOptOut                       OptOut
	TargetedAdvertisingOptOut        OptOut
	SensitiveDataProcessing          UsTxSensitiveDataProcessing
	KnownChildSensitiveDataConsents  Consent
	AdditionalDataProcessingConsent  Consent
	MspaCoveredTransaction           bool
	MspaOptOutOptionMode             MspaMode
	MspaServiceProviderMode          MspaMode
}

// UsTx is the Texas Data Privacy and Security Act section. No published
// field-level schema was available for this state at the time this was
// written; its shape is extrapolated from the other 2024-era state laws
// (UsNe, UsNj) rather than grounded on a parsed reference source.
type UsTx struct {
	Core UsTxCore
	GPC  *bool
}

func (UsTx) SectionID() SectionID { return SectionUsTx }

func init() {
	registerSectionDecoder(SectionUsTx, func(body string) (Section, error) {
		return decodeUsTx(body)
	})
}

func decodeUsTx(body string) (UsTx, error) {
	var sec UsTx
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usTxVersion); err != nil {
		return sec, err
	}

	var core UsTxCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsTx, err)
		}
	}
	if core.KnownChildSensitiveDataConsents, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	if core.AdditionalDataProcessingConsent, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsTx, err)
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
