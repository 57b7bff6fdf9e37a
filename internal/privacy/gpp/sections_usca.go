package gpp

const usCaVersion = 1

// UsCaSensitiveDataProcessing is UsCa's sensitive-data opt-out block.
// Unlike most other US state sections, California expresses these as
// OptOut rather than Consent: CPRA frames sensitive-category handling
// as something a consumer opts out of, not consents into.
type UsCaSensitiveDataProcessing struct {
	IdentificationDocuments       OptOut
	FinancialData                 OptOut
	PreciseGeolocation            OptOut
	OriginBeliefsOrUnion          OptOut
	MailEmailOrTextMessages       OptOut
	GeneticData                   OptOut
	BiometricUniqueIdentification OptOut
	HealthData                    OptOut
	SexLifeOrSexualOrientation    OptOut
}

type UsCaKnownChildSensitiveDataConsents struct {
	SellPersonalInformation   Consent
	SharePersonalInformation  Consent
}

type UsCaCore struct {
	SaleOptOutNotice                 Notice
	SharingOptOutNotice              Notice
	SensitiveDataLimitUseNotice      Notice
	SaleOptOut                       OptOut
	SharingOptOut                    OptOut
	SensitiveDataProcessing          UsCaSensitiveDataProcessing
	KnownChildSensitiveDataConsents  UsCaKnownChildSensitiveDataConsents
	PersonalDataConsent              Consent
	MspaCoveredTransaction           bool
	MspaOptOutOptionMode             MspaMode
	MspaServiceProviderMode          MspaMode
}

// UsCa is the California Consumer Privacy Act / CPRA section. Its one
// optional segment (type 1) carries the Global Privacy Control signal.
type UsCa struct {
	Core UsCaCore
	GPC  *bool
}

func (UsCa) SectionID() SectionID { return SectionUsCa }

func init() {
	registerSectionDecoder(SectionUsCa, func(body string) (Section, error) {
		return decodeUsCa(body)
	})
}

func decodeUsCa(body string) (UsCa, error) {
	var sec UsCa
	segments := splitSegments(body)

	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)
	if err := decodeCoreVersion(d, usCaVersion); err != nil {
		return sec, err
	}

	var core UsCaCore
	if core.SaleOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.SharingOptOutNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.SensitiveDataLimitUseNotice, err = readNotice(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.SaleOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.SharingOptOut, err = readOptOut(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	sdp := &core.SensitiveDataProcessing
	for _, field := range []*OptOut{
		&sdp.IdentificationDocuments, &sdp.FinancialData, &sdp.PreciseGeolocation,
		&sdp.OriginBeliefsOrUnion, &sdp.MailEmailOrTextMessages, &sdp.GeneticData,
		&sdp.BiometricUniqueIdentification, &sdp.HealthData, &sdp.SexLifeOrSexualOrientation,
	} {
		if *field, err = readOptOut(d); err != nil {
			return sec, errSectionRead(SectionUsCa, err)
		}
	}
	if core.KnownChildSensitiveDataConsents.SellPersonalInformation, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.KnownChildSensitiveDataConsents.SharePersonalInformation, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.PersonalDataConsent, err = readConsent(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.MspaCoveredTransaction, err = readMspaCoveredTransaction(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.MspaOptOutOptionMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
	}
	if core.MspaServiceProviderMode, err = readMspaMode(d); err != nil {
		return sec, errSectionRead(SectionUsCa, err)
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
