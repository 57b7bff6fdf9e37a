package gpp

const usCtVersion = 1

type UsCtSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs                Consent
	HealthConditionOrDiagnosis      Consent
	SexLifeOrSexualOrientation      Consent
	CitizenshipOrImmigrationStatus  Consent
	GeneticUniqueIdentification     Consent
	BiometricUniqueIdentification   Consent
	PreciseGeolocationData          Consent
}

type UsCtKnownChildSensitiveDataConsents struct {
	ProcessSensitiveDataFromKnownChild Consent
	SellPersonalDataFrom13To16         Consent
	ProcessPersonalDataFrom13To16      Consent
}

type UsCtCore struct {
	SharingNotice                     Notice
	SaleOptOutNotice                  Notice
	TargetedAdvertisingOptOutNotice   Notice
	SaleOptOut                        OptOut
	TargetedAdvertisingOptOut         OptOut
	SensitiveDataProcessing           UsCtSensitiveDataProcessing
	KnownChildSensitiveDataConsents   UsCtKnownChildSensitiveDataConsents
	MspaCoveredTransaction            bool
	MspaOptOutOptionMode              MspaMode
	MspaServiceProviderMode           MspaMode
}

// UsCt is the Connecticut Data Privacy Act section. Its one optional
// segment (type 1) carries the Global Privacy Control signal.
type UsCt struct {
	Core UsCtCore
	GPC  *bool
}

func (UsCt) SectionID() SectionID { return SectionUsCt }

func init() {
	registerSectionDecoder(SectionUsCt, func(body string) (Section, error) {
		return decodeUsCt(body)
	})
}

func decodeUsCt(body string) (UsCt, error) {
	var sec UsCt
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usCtVersion); err != nil {
		return sec, err
	}

	var core UsCtCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCt, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCt, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCt, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsCt, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsCt, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexLifeOrSexualOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsCt, err)
		}
	}
	kc := &core.KnownChildSensitiveDataConsents
	for _, field := range []*Consent{
		&kc.ProcessSensitiveDataFromKnownChild, &kc.SellPersonalDataFrom13To16, &kc.ProcessPersonalDataFrom13To16,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsCt, err)
		}
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsCt, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsCt, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsCt, err)
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
