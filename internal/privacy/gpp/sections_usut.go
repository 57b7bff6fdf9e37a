package gpp

const usUtVersion = 1

type UsUtSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs                Consent
	SexualOrientation               Consent
	CitizenshipOrImmigrationStatus  Consent
	HealthData                      Consent
	GeneticUniqueIdentification     Consent
	BiometricUniqueIdentification   Consent
	SpecificGeolocationData         Consent
}

type UsUtCore struct {
	SharingNotice                          Notice
	SaleOptOutNotice                       Notice
	TargetedAdvertisingOptOutNotice        Notice
	SensitiveDataProcessingOptOutNotice    Notice
	SaleOptOut                             OptOut
	TargetedAdvertisingOptOut              OptOut
	SensitiveDataProcessing                UsUtSensitiveDataProcessing
	KnownChildSensitiveDataConsents        Consent
	MspaCoveredTransaction                 bool
	MspaOptOutOptionMode                   MspaMode
	MspaServiceProviderMode                MspaMode
}

// UsUt is the Utah Consumer Privacy Act section. It has no optional
// segments.
type UsUt struct {
	Core UsUtCore
}

func (UsUt) SectionID() SectionID { return SectionUsUt }

func init() {
	registerSectionDecoder(SectionUsUt, func(body string) (Section, error) {
		return decodeUsUt(body)
	})
}

func decodeUsUt(body string) (UsUt, error) {
	var sec UsUt
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usUtVersion); err != nil {
		return sec, err
	}

	var core UsUtCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	if core.SensitiveDataProcessingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.SexualOrientation,
		&sdp.CitizenshipOrImmigrationStatus, &sdp.HealthData, &sdp.GeneticUniqueIdentification,
		&sdp.BiometricUniqueIdentification, &sdp.SpecificGeolocationData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsUt, err)
		}
	}
	if core.KnownChildSensitiveDataConsents, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsUt, err)
	}
	sec.Core = core

	if len(segments) > 1 {
		return sec, errUnknownSegmentType(0)
	}

	return sec, nil
}
