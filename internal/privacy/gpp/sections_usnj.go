package gpp

const usNjVersion = 1

type UsNjSensitiveDataProcessing struct {
	RacialOrEthnicOrigin           Consent
	ReligiousBeliefs                Consent
	HealthConditionOrDiagnosis      Consent
	SexOrientation                  Consent
	CitizenshipOrImmigrationStatus  Consent
	GeneticUniqueIdentification     Consent
	BiometricUniqueIdentification   Consent
	PreciseGeolocationData          Consent
	TransgenderOrNonbinaryStatus    Consent
	FinancialData                   Consent
}

type UsNjKnownChildSensitiveDataConsents struct {
	ProcessConsentFromMinor      Consent
	ProcessConsentFrom13To16Sell Consent
	From13To16Sell               Consent
	From13To16Share              Consent
	From13To16TargetedAdvertise  Consent
}

type UsNjCore struct {
	SharingNotice                     Notice
	SaleOptOutNotice                  Notice
	TargetedAdvertisingOptOutNotice   Notice
	SaleOptOut                        OptOut
	TargetedAdvertisingOptOut         OptOut
	SensitiveDataProcessing           UsNjSensitiveDataProcessing
	KnownChildSensitiveDataConsents   UsNjKnownChildSensitiveDataConsents
	AdditionalDataProcessingConsent   Consent
	MspaCoveredTransaction            bool
	MspaOptOutOptionMode              MspaMode
	MspaServiceProviderMode           MspaMode
}

// UsNj is the New Jersey Data Privacy Act section. Its one optional
// segment (type 1) carries the Global Privacy Control signal.
type UsNj struct {
	Core UsNjCore
	GPC  *bool
}

func (UsNj) SectionID() SectionID { return SectionUsNj }

func init() {
	registerSectionDecoder(SectionUsNj, func(body string) (Section, error) {
		return decodeUsNj(body)
	})
}

func decodeUsNj(body string) (UsNj, error) {
	var sec UsNj
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usNjVersion); err != nil {
		return sec, err
	}

	var core UsNjCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexOrientation, &sdp.CitizenshipOrImmigrationStatus,
		&sdp.GeneticUniqueIdentification, &sdp.BiometricUniqueIdentification, &sdp.PreciseGeolocationData,
		&sdp.TransgenderOrNonbinaryStatus, &sdp.FinancialData,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsNj, err)
		}
	}
	kc := &core.KnownChildSensitiveDataConsents
	for _, field := range []*Consent{
		&kc.ProcessConsentFromMinor, &kc.ProcessConsentFrom13To16Sell, &kc.From13To16Sell,
		&kc.From13To16Share, &kc.From13To16TargetedAdvertise,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsNj, err)
		}
	}
	if core.AdditionalDataProcessingConsent, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsNj, err)
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
