package gpp

const usFlVersion = 1

type UsFlSensitiveDataProcessing struct {
	RacialOrEthnicOrigin          Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexLifeOrSexualOrientation     Consent
	CitizenshipOrImmigrationStatus Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
	PreciseGeolocationData         Consent
}

type UsFlKnownChildSensitiveDataConsents struct {
	Under13    Consent
	From13To16 Consent
	From16To18 Consent
}

type UsFlCore struct {
	ProcessingNotice                  Notice
	SaleOptOutNotice                  Notice
	TargetedAdvertisingOptOutNotice   Notice
	SaleOptOut                        OptOut
	TargetedAdvertisingOptOut         OptOut
	SensitiveDataProcessing           UsFlSensitiveDataProcessing
	KnownChildSensitiveDataConsents   UsFlKnownChildSensitiveDataConsents
	AdditionalDataProcessingConsent   Consent
	MspaCoveredTransaction            bool
	MspaOptOutOptionMode              MspaMode
	MspaServiceProviderMode           MspaMode
}

// UsFl is the Florida Digital Bill of Rights section. It has no
// optional segments.
type UsFl struct {
	Core UsFlCore
}

func (UsFl) SectionID() SectionID { return SectionUsFl }

func init() {
	registerSectionDecoder(SectionUsFl, func(body string) (Section, error) {
		return decodeUsFl(body)
	})
}

func decodeUsFl(body string) (UsFl, error) {
	var sec UsFl
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usFlVersion); err != nil {
		return sec, err
	}

	var core UsFlCore
	if core.ProcessingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexLifeOrSexualOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsFl, err)
		}
	}
	kc := &core.KnownChildSensitiveDataConsents
	for _, field := range []*Consent{&kc.Under13, &kc.From13To16, &kc.From16To18} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsFl, err)
		}
	}
	if core.AdditionalDataProcessingConsent, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsFl, err)
	}
	sec.Core = core

	if len(segments) > 1 {
		return sec, errUnknownSegmentType(0)
	}

	return sec, nil
}
