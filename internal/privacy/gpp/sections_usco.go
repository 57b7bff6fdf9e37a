package gpp

const usCoVersion = 1

type UsCoSensitiveDataProcessing struct {
	RacialOrEthnicOrigin          Consent
	ReligiousBeliefs               Consent
	HealthConditionOrDiagnosis     Consent
	SexLifeOrSexualOrientation     Consent
	CitizenshipData                Consent
	GeneticUniqueIdentification    Consent
	BiometricUniqueIdentification  Consent
}

type UsCoCore struct {
	SharingNotice                      Notice
	SaleOptOutNotice                   Notice
	TargetedAdvertisingOptOutNotice    Notice
	SaleOptOut                         OptOut
	TargetedAdvertisingOptOut          OptOut
	SensitiveDataProcessing            UsCoSensitiveDataProcessing
	KnownChildSensitiveDataConsents    Consent
	MspaCoveredTransaction             bool
	MspaOptOutOptionMode               MspaMode
	MspaServiceProviderMode            MspaMode
}

// UsCo is the Colorado Privacy Act section. Its one optional segment
// (type 1) carries the Global Privacy Control signal.
type UsCo struct {
	Core UsCoCore
	GPC  *bool
}

func (UsCo) SectionID() SectionID { return SectionUsCo }

func init() {
	registerSectionDecoder(SectionUsCo, func(body string) (Section, error) {
		return decodeUsCo(body)
	})
}

func decodeUsCo(body string) (UsCo, error) {
	var sec UsCo
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usCoVersion); err != nil {
		return sec, err
	}

	var core UsCoCore
	if core.SharingNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*Consent{
		&sdp.RacialOrEthnicOrigin, &sdp.ReligiousBeliefs, &sdp.HealthConditionOrDiagnosis,
		&sdp.SexLifeOrSexualOrientation, &sdp.CitizenshipData, &sdp.GeneticUniqueIdentification,
		&sdp.BiometricUniqueIdentification,
	} {
		if *field, err = readConsent(d); err != nil {
			return sec, errSectionRead(SectionUsCo, err)
		}
	}
	if core.KnownChildSensitiveDataConsents, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsCo, err)
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
