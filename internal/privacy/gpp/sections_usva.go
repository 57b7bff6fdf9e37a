package gpp

const usVaVersion = 1

type UsVaSensitiveDataProcessing struct {
	RacialOrEthnicOrigin            Consent
	ReligiousOrPhilosophicalBeliefs Consent
	HealthDiagnosisData             Consent
	SexLifeOrSexualOrientation      Consent
	CitizenshipOrImmigrationStatus  Consent
	GeneticUniqueIdentification     Consent
	BiometricUniqueIdentification   Consent
	PreciseGeolocationData          Consent
}

type UsVaCore struct {
	SharingNotice                    Notice
	SaleOptOutNotice                 Notice
	TargetedAdvertisingOptOutNotice  Notice
	SaleOptOut                       OptOut
	TargetedAdvertisingOptOut        OptOut
	SensitiveDataProcessing          UsVaSensitiveDataProcessing
	KnownChildSensitiveDataConsents  Consent
	MspaCoveredTransaction           bool
	MspaOptOutOptionMode             MspaMode
	MspaServiceProviderMode          MspaMode
}

// UsVa is the Virginia Consumer Data Protection Act section. It has no
// optional segments.
type UsVa struct {
	Core UsVaCore
}

func (UsVa) SectionID() SectionID { return SectionUsVa }

func init() {
	registerSectionDecoder(SectionUsVa, func(body string) (Section, error) {
		return decodeUsVa(body)
	})
}

func decodeUsVa(body string) (UsVa, error) {
	var sec UsVa
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usVaVersion); err != nil {
		return sec, err
	}

	var core UsVaCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousOrPhilosophicalBeliefs, &sdp.HealthDiagnosisData,
		&sdp.SexLifeOrSexualOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsVa, err)
		}
	}
	if core.KnownChildSensitiveDataConsents, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsVa, err)
	}
	sec.Core = core

	if len(segments) > 1 {
		return sec, errUnknownSegmentType(0)
	}

	return sec, nil
}
