package gpp

const usNeVersion = 1

type UsNeSensitiveDataProcessing struct {
	RacialOrEthnicOrigin          Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexOrientation                 Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsNeCore struct {
	SharingNotice                    Notice
	SaleOptOutNotice                 Notice
	TargetedAdvertisingOptOutNotice  Notice
	SaleOptOut                       OptOut
	TargetedAdvertisingOptOut        OptOut
	SensitiveDataProcessing          UsNeSensitiveDataProcessing
	KnownChildSensitiveDataConsents  Consent
	AdditionalDataProcessingConsent  Consent
	MspaCoveredTransaction           bool
	MspaOptOutOptionMode             MspaMode
	MspaServiceProviderMode          MspaMode
}

// UsNe is the Nebraska Data Privacy Act section. Its one optional
// segment (type 1) carries the Global Privacy Control signal.
type UsNe struct {
	Core UsNeCore
	GPC  *bool
}

func (UsNe) SectionID() SectionID { return SectionUsNe }

func init() {
	registerSectionDecoder(SectionUsNe, func(body string) (Section, error) {
		return decodeUsNe(body)
	})
}

func decodeUsNe(body string) (UsNe, error) {
	var sec UsNe
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usNeVersion); err != nil {
		return sec, err
	}

	var core UsNeCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsNe, err)
		}
	}
	if core.KnownChildSensitiveDataConsents, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	if core.AdditionalDataProcessingConsent, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsNe, err)
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
