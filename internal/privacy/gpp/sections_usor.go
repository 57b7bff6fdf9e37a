package gpp

const usOrVersion = 1

type UsOrSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	NationalOrigin                  Consent
	ReligiousBeliefs                 Consent
	HealthConditionOrDiagnosis       Consent
	SexLifeOrSexualOrientation       Consent
	CitizenshipOrImmigrationStatus   Consent
	GeneticUniqueIdentification      Consent
	BiometricUniqueIdentification    Consent
	PreciseGeolocationData           Consent
	TransgenderOrNonbinaryStatus     Consent
	CrimeVictimStatus                Consent
}

type UsOrKnownChildSensitiveDataConsents struct {
	ProcessConsentFromMinor  Consent
	From13To15Sell           Consent
	From13To15TargetAd       Consent
}

type UsOrCore struct {
	SharingNotice                     Notice
	SaleOptOutNotice                  Notice
	TargetedAdvertisingOptOutNotice   Notice
	SaleOptOut                        OptOut
	TargetedAdvertisingOptOut         OptOut
	SensitiveDataProcessing           UsOrSensitiveDataProcessing
	KnownChildSensitiveDataConsents   UsOrKnownChildSensitiveDataConsents
	AdditionalDataProcessingConsent   Consent
	MspaCoveredTransaction            bool
	MspaOptOutOptionMode              MspaMode
	MspaServiceProviderMode           MspaMode
}

// UsOr is the Oregon Consumer Privacy Act section. Its one optional
// segment (type 1) carries the Global Privacy Control signal.
type UsOr struct {
	Core UsOrCore
	GPC  *bool
}

func (UsOr) SectionID() SectionID { return SectionUsOr }

func init() {
	registerSectionDecoder(SectionUsOr, func(body string) (Section, error) {
		return decodeUsOr(body)
	})
}

func decodeUsOr(body string) (UsOr, error) {
	var sec UsOr
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usOrVersion); err != nil {
		return sec, err
	}

	var core UsOrCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.NationalOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexLifeOrSexualOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
		&sdp.TransgenderOrNonbinaryStatus, &sdp.CrimeVictimStatus,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsOr, err)
		}
	}
	kc := &core.KnownChildSensitiveDataConsents
	for _, field := range []*Consent{&kc.ProcessConsentFromMinor, &kc.From13To15Sell, &kc.From13To15TargetAd} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsOr, err)
		}
	}
	if core.AdditionalDataProcessingConsent, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsOr, err)
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
