package gpp

import "time"

const tcfEuV2Version = 2

// RestrictionType is the kind of publisher restriction a TcfEuV2
// publisher restriction entry carries.
type RestrictionType uint8

const (
	RestrictionNotAllowed               RestrictionType = 0
	RestrictionRequireConsent           RestrictionType = 1
	RestrictionRequireLegitimateInterest RestrictionType = 2
	RestrictionUndefined                RestrictionType = 3
)

func restrictionTypeFromUint8(v uint8) RestrictionType {
	if v > uint8(RestrictionUndefined) {
		return RestrictionUndefined
	}
	return RestrictionType(v)
}

// PublisherRestriction is one entry of TcfEuV2Core's publisher
// restrictions array: which purpose it applies to, what kind of
// restriction it imposes, and which vendors it names.
type PublisherRestriction struct {
	PurposeID           uint8
	RestrictionType     RestrictionType
	RestrictedVendorIDs IdSet
}

// TcfEuV2Core is the mandatory segment of a TcfEuV2 section.
type TcfEuV2Core struct {
	Created                    time.Time
	LastUpdated                time.Time
	CmpID                      uint16
	CmpVersion                 uint16
	ConsentScreen              uint8
	ConsentLanguage            string
	VendorListVersion          uint16
	PolicyVersion              uint8
	IsServiceSpecific          bool
	UseNonStandardStacks       bool
	SpecialFeatureOptins       IdSet
	PurposeConsents            IdSet
	PurposeLegitimateInterests IdSet
	PurposeOneTreatment        bool
	PublisherCountryCode       string
	VendorConsents             IdSet
	VendorLegitimateInterests  IdSet
	PublisherRestrictions      []PublisherRestriction
}

// PublisherPurposes is TcfEuV2's optional segment type 3.
type PublisherPurposes struct {
	Consents                  IdSet
	LegitimateInterests       IdSet
	CustomConsents            IdSet
	CustomLegitimateInterests IdSet
}

// TcfEuV2 is the EU Transparency and Consent Framework, version 2. It
// carries a mandatory core plus up to three optional segments:
// disclosed vendors, allowed vendors, and publisher purposes, each
// identified on the wire by a 3-bit segment type tag.
type TcfEuV2 struct {
	Core               TcfEuV2Core
	DisclosedVendors   *IdSet
	AllowedVendors     *IdSet
	PublisherPurposes  *PublisherPurposes
}

func (TcfEuV2) SectionID() SectionID { return SectionTcfEuV2 }

func init() {
	registerSectionDecoder(SectionTcfEuV2, func(body string) (Section, error) {
		return decodeTcfEuV2(body)
	})
}

func decodeTcfEuV2(body string) (TcfEuV2, error) {
	var sec TcfEuV2
	segments := splitSegments(body)

	core, err := decodeTcfEuV2Core(segments[0])
	if err != nil {
		return sec, err
	}
	sec.Core = core

	err = decodeOptionalSegments(segments[1:], 3, map[uint8]func(*DataReader) error{
		1: func(d *DataReader) error {
			ids, err := d.readOptimizedIntegerRange()
			if err != nil {
				return err
			}
			sec.DisclosedVendors = &ids
			return nil
		},
		2: func(d *DataReader) error {
			ids, err := d.readOptimizedIntegerRange()
			if err != nil {
				return err
			}
			sec.AllowedVendors = &ids
			return nil
		},
		3: func(d *DataReader) error {
			pp, err := decodeTcfEuV2PublisherPurposes(d)
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

func decodeTcfEuV2Core(segment string) (TcfEuV2Core, error) {
	var core TcfEuV2Core
	raw, err := decodeBase64URL(segment)
	if err != nil {
		return core, errDecodeSegment(err)
	}
	d := NewDataReader(raw)

	if err := decodeCoreVersion(d, tcfEuV2Version); err != nil {
		return core, err
	}
	if core.Created, err = d.readDatetime(); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.LastUpdated, err = d.readDatetime(); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if v, err := d.readFixedInteger(12); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	} else {
		core.CmpID = uint16(v)
	}
	if v, err := d.readFixedInteger(12); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	} else {
		core.CmpVersion = uint16(v)
	}
	if v, err := d.readFixedInteger(6); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	} else {
		core.ConsentScreen = uint8(v)
	}
	if core.ConsentLanguage, err = d.readString(2); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if v, err := d.readFixedInteger(12); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	} else {
		core.VendorListVersion = uint16(v)
	}
	if v, err := d.readFixedInteger(6); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	} else {
		core.PolicyVersion = uint8(v)
	}
	if core.IsServiceSpecific, err = d.readBool(); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.UseNonStandardStacks, err = d.readBool(); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.SpecialFeatureOptins, err = d.readFixedBitfield(12); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.PurposeConsents, err = d.readFixedBitfield(24); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.PurposeLegitimateInterests, err = d.readFixedBitfield(24); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.PurposeOneTreatment, err = d.readBool(); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.PublisherCountryCode, err = d.readString(2); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.VendorConsents, err = d.readOptimizedIntegerRange(); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	if core.VendorLegitimateInterests, err = d.readOptimizedIntegerRange(); err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	entries, err := d.readArrayOfRanges()
	if err != nil {
		return core, errSectionRead(SectionTcfEuV2, err)
	}
	core.PublisherRestrictions = make([]PublisherRestriction, len(entries))
	for i, e := range entries {
		core.PublisherRestrictions[i] = PublisherRestriction{
			PurposeID:           e.Key,
			RestrictionType:     restrictionTypeFromUint8(e.RangeType),
			RestrictedVendorIDs: e.Ids,
		}
	}

	return core, nil
}

func decodeTcfEuV2PublisherPurposes(d *DataReader) (PublisherPurposes, error) {
	var pp PublisherPurposes
	var err error
	if pp.Consents, err = d.readFixedBitfield(24); err != nil {
		return pp, err
	}
	if pp.LegitimateInterests, err = d.readFixedBitfield(24); err != nil {
		return pp, err
	}
	numCustomConsents, err := d.readFixedInteger(6)
	if err != nil {
		return pp, err
	}
	if pp.CustomConsents, err = d.readFixedBitfield(int(numCustomConsents)); err != nil {
		return pp, err
	}
	if pp.CustomLegitimateInterests, err = d.readFixedBitfield(int(numCustomConsents)); err != nil {
		return pp, err
	}
	return pp, nil
}
