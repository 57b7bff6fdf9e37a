package gpp

const usNatVersion = 1

// UsNatSensitiveDataProcessing is UsNat's sensitive-data consent block.
type UsNatSensitiveDataProcessing struct {
	RacialOrEthnicOrigin            Consent
	ReligiousOrPhilosophicalBeliefs Consent
	HealthData                      Consent
	SexLifeOrSexualOrientation      Consent
	CitizenshipOrImmigrationStatus  Consent
	GeneticUniqueIdentification     Consent
	BiometricUniqueIdentification   Consent
	PreciseGeolocationData          Consent
	IdentificationDocuments         Consent
	FinancialData                   Consent
	UnionMembership                 Consent
	MailEmailOrTextMessages         Consent
}

// UsNatKnownChildSensitiveDataConsents is UsNat's child-data consent block.
type UsNatKnownChildSensitiveDataConsents struct {
	From13To16 Consent
	Under13    Consent
}

// UsNatCore is the mandatory segment of a UsNat section.
type UsNatCore struct {
	SharingNotice                        Notice
	SaleOptOutNotice                     Notice
	SharingOptOutNotice                  Notice
	TargetedAdvertisingOptOutNotice      Notice
	SensitiveDataProcessingOptOutNotice  Notice
	SensitiveDataLimitUseNotice          Notice
	SaleOptOut                           OptOut
	SharingOptOut                        OptOut
	TargetedAdvertisingOptOut            OptOut
	SensitiveDataProcessing              UsNatSensitiveDataProcessing
	KnownChildSensitiveDataConsents      UsNatKnownChildSensitiveDataConsents
	PersonalDataConsent                  Consent
	MspaCoveredTransaction               bool
	MspaOptOutOptionMode                 MspaMode
	MspaServiceProviderMode              MspaMode
}

// UsNat is the multi-state US national section used by MSPA-covered
// entities. Its one optional segment (type 1) carries the Global
// Privacy Control signal.
type UsNat struct {
	Core UsNatCore
	GPC  *bool
}

func (UsNat) SectionID() SectionID { return SectionUsNat }

func init() {
	registerSectionDecoder(SectionUsNat, func(body string) (Section, error) {
		return decodeUsNat(body)
	})
}

func decodeUsNat(body string) (UsNat, error) {
	var sec UsNat
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usNatVersion); err != nil {
		return sec, err
	}
	core, err := decodeUsNatCore(d)
	if err != nil {
		return sec, errSectionRead(SectionUsNat, err)
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

func decodeUsNatCore(d *DataReader) (UsNatCore, error) {
	var core UsNatCore
	var err error
	if core.SharingNotice, err = readNotice(d); err != nil {
		return core, err
	}
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return core, err
	}
	if core.SharingOptOutNotice, err = readNotice(d); err != nil {
		return core, err
	}
	if core.TargetedAdvertisingOptOutNotice, err = readNotice(d); err != nil {
		return core, err
	}
	if core.SensitiveDataProcessingOptOutNotice, err = readNotice(d); err != nil {
		return core, err
	}
	if core.SensitiveDataLimitUseNotice, err = readNotice(d); err != nil {
		return core, err
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return core, err
	}
	if core.SharingOptOut, err = readOptOut(d); err != nil {
		return core, err
	}
	if core.TargetedAdvertisingOptOut, err = readOptOut(d); err != nil {
		return core, err
	}
	if core.SensitiveDataProcessing, err = decodeUsNatSensitiveDataProcessing(d); err != nil {
		return core, err
	}
	if core.KnownChildSensitiveDataConsents, err = decodeUsNatKnownChildSensitiveDataConsents(d); err != nil {
		return core, err
	}
	if core.PersonalDataConsent, err = readConsent(d); err != nil {
		return core, err
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return core, err
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return core, err
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return core, err
	}
	return core, nil
}

func decodeUsNatSensitiveDataProcessing(d *DataReader) (UsNatSensitiveDataProcessing, error) {
	var s UsNatSensitiveDataProcessing
	var err error
	if s.RacialOrEthnicOrigin, err = readConsent(d); err != nil {
		return s, err
	}
	if s.ReligiousOrPhilosophicalBeliefs, err = readConsent(d); err != nil {
		return s, err
	}
	if s.HealthData, err = readConsent(d); err != nil {
		return s, err
	}
	if s.SexLifeOrSexualOrientation, err = readConsent(d); err != nil {
		return s, err
	}
	if s.CitizenshipOrImmigrationStatus, err = readConsent(d); err != nil {
		return s, err
	}
	if s.GeneticUniqueIdentification, err = readConsent(d); err != nil {
		return s, err
	}
	if s.BiometricUniqueIdentification, err = readConsent(d); err != nil {
		return s, err
	}
	if s.PreciseGeolocationData, err = readConsent(d); err != nil {
		return s, err
	}
	if s.IdentificationDocuments, err = readConsent(d); err != nil {
		return s, err
	}
	if s.FinancialData, err = readConsent(d); err != nil {
		return s, err
	}
	if s.UnionMembership, err = readConsent(d); err != nil {
		return s, err
	}
	if s.MailEmailOrTextMessages, err = readConsent(d); err != nil {
		return s, err
	}
	return s, nil
}

func decodeUsNatKnownChildSensitiveDataConsents(d *DataReader) (UsNatKnownChildSensitiveDataConsents, error) {
	var c UsNatKnownChildSensitiveDataConsents
	var err error
	if c.From13To16, err = readConsent(d); err != nil {
		return c, err
	}
	if c.Under13, err = readConsent(d); err != nil {
		return c, err
	}
	return c, nil
}
