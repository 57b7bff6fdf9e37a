package gpp

import "time"

const tcfCaV1Version = 1

// TcfCaV1RestrictionType is the kind of publisher restriction a TcfCaV1
// publisher restriction entry carries. CPRA's two non-zero codes mean
// something distinct from GDPR's: an express or implied consent
// requirement, not a consent/legitimate-interest choice, even though the
// wire encoding (a 2-bit value) is identical to TcfEuV2's.
type TcfCaV1RestrictionType uint8

const (
	TcfCaV1RestrictionNotAllowed            TcfCaV1RestrictionType = 0
	TcfCaV1RestrictionRequireExpressConsent TcfCaV1RestrictionType = 1
	TcfCaV1RestrictionRequireImpliedConsent TcfCaV1RestrictionType = 2
	TcfCaV1RestrictionUndefined             TcfCaV1RestrictionType = 3
)

func tcfCaV1RestrictionTypeFromUint8(v uint8) TcfCaV1RestrictionType {
	if v > uint8(TcfCaV1RestrictionUndefined) {
		return TcfCaV1RestrictionUndefined
	}
	return TcfCaV1RestrictionType(v)
}

// TcfCaV1PublisherRestriction is one entry of TcfCaV1Core's publisher
// restrictions array: which purpose it applies to, what kind of
// restriction it imposes under CPRA, and which vendors it names.
type TcfCaV1PublisherRestriction struct {
	PurposeID           uint8
	RestrictionType     TcfCaV1RestrictionType
	RestrictedVendorIDs IdSet
}

// TcfCaV1Core is the mandatory segment of a TcfCaV1 section. The
// vendor express/implied consent fields are read as
// readOptimizedIntegerRange even though the CA TCF specification calls
// for optimized_range: the wire format actually shipped this way, so
// this decoder matches encoders in the wild rather than the spec text.
type TcfCaV1Core struct {
	Created                         time.Time
	LastUpdated                     time.Time
	CmpID                           uint16
	CmpVersion                      uint16
	ConsentScreen                   uint8
	ConsentLanguage                 string
	VendorListVersion               uint16
	PolicyVersion                   uint8
	UseNonStandardStacks            bool
	SpecialFeatureExpressConsents   IdSet
	PurposeExpressConsents          IdSet
	PurposeImpliedConsents          IdSet
	VendorExpressConsents           IdSet
	VendorImpliedConsents           IdSet
	PubRestrictions                 []TcfCaV1PublisherRestriction
}

// TcfCaV1PublisherPurposes is TcfCaV1's optional segment type 3.
type TcfCaV1PublisherPurposes struct {
	PurposeExpressConsents       IdSet
	PurposeImpliedConsents       IdSet
	CustomPurposeExpressConsents IdSet
	CustomPurposeImpliedConsents IdSet
}

// TcfCaV1 is the Canadian Transparency and Consent Framework, version
// 1. It carries a mandatory core plus up to two optional segments:
// disclosed vendors (type 1) and publisher purposes (type 3), each
// identified by a 3-bit segment type tag.
type TcfCaV1 struct {
	Core               TcfCaV1Core
	DisclosedVendors   *IdSet
	PublisherPurposes  *TcfCaV1PublisherPurposes
}

func (TcfCaV1) SectionID() SectionID { return SectionTcfCaV1 }

func init() {
	registerSectionDecoder(SectionTcfCaV1, func(body string) (Section, error) {
		return decodeTcfCaV1(body)
	})
}

func decodeTcfCaV1(body string) (TcfCaV1, error) {
	var sec TcfCaV1
	segments := splitSegments(body)

	core, err := decodeTcfCaV1Core(segments[0])
	if err != nil {
		return sec, err
	}
	sec.Core = core

	err = decodeOptionalSegments(segments[1:], 3, map[uint8]func(*DataReader) error{
		1: func(d *DataReader) error {
			ids, err := d.readOptimizedRange()
			if err != nil {
				return err
			}
			sec.DisclosedVendors = &ids
			return nil
		},
		3: func(d *DataReader) error {
			pp, err := decodeTcfCaV1PublisherPurposes(d)
			if err != nil {
				return err
			}
			sec.PublisherPurposes = &pp
			return nil
		},
	})
	if err != nil {
		return sec, err
	}

	return sec, nil
}

func decodeTcfCaV1Core(segment string) (TcfCaV1Core, error) {
	var core TcfCaV1Core
	raw, err := decodeBase64URL(segment)
	if err != nil {
		return core, errDecodeSegment(err)
	}
	d := NewDataReader(raw)

	if err := decodeCoreVersion(d, tcfCaV1Version); err != nil {
		return core, err
	}
	if core.Created, err = d.readDatetime(); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	if core.LastUpdated, err = d.readDatetime(); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	if v, err := d.readFixedInteger(12); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	} else {
		core.CmpID = uint16(v)
	}
	if v, err := d.readFixedInteger(12); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	} else {
		core.CmpVersion = uint16(v)
	}
	if v, err := d.readFixedInteger(6); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	} else {
		core.ConsentScreen = uint8(v)
	}
	if core.ConsentLanguage, err = d.readString(2); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	if v, err := d.readFixedInteger(12); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	} else {
		core.VendorListVersion = uint16(v)
	}
	if v, err := d.readFixedInteger(6); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	} else {
		core.PolicyVersion = uint8(v)
	}
	if core.UseNonStandardStacks, err = d.readBool(); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	if core.SpecialFeatureExpressConsents, err = d.readFixedBitfield(12); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	if core.PurposeExpressConsents, err = d.readFixedBitfield(24); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	if core.PurposeImpliedConsents, err = d.readFixedBitfield(24); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	if core.VendorExpressConsents, err = d.readOptimizedIntegerRange(); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	if core.VendorImpliedConsents, err = d.readOptimizedIntegerRange(); err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	entries, err := d.readNArrayOfRanges(6, 2)
	if err != nil {
		return core, errSectionRead(SectionTcfCaV1, err)
	}
	core.PubRestrictions = make([]TcfCaV1PublisherRestriction, len(entries))
	for i, e := range entries {
		core.PubRestrictions[i] = TcfCaV1PublisherRestriction{
			PurposeID:           e.Key,
			RestrictionType:     tcfCaV1RestrictionTypeFromUint8(e.RangeType),
			RestrictedVendorIDs: e.Ids,
		}
	}

	return core, nil
}

func decodeTcfCaV1PublisherPurposes(d *DataReader) (TcfCaV1PublisherPurposes, error) {
	var pp TcfCaV1PublisherPurposes
	var err error
	if pp.PurposeExpressConsents, err = d.readFixedBitfield(24); err != nil {
		return pp, err
	}
	if pp.PurposeImpliedConsents, err = d.readFixedBitfield(24); err != nil {
		return pp, err
	}
	numCustom, err := d.readFixedInteger(6)
	if err != nil {
		return pp, err
	}
	if pp.CustomPurposeExpressConsents, err = d.readFixedBitfield(int(numCustom)); err != nil {
		return pp, err
	}
	if pp.CustomPurposeImpliedConsents, err = d.readFixedBitfield(int(numCustom)); err != nil {
		return pp, err
	}
	return pp, nil
}
