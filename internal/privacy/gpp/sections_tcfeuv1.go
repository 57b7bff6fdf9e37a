package gpp

import "time"

const tcfEuV1Version = 1

// TcfEuV1 is the EU Transparency and Consent Framework, version 1
// (https://github.com/InteractiveAdvertisingBureau/GDPR-Transparency-and-Consent-Framework).
// It has no optional segments.
type TcfEuV1 struct {
	Created           time.Time
	LastUpdated       time.Time
	CmpID             uint16
	CmpVersion        uint16
	ConsentScreen     uint8
	ConsentLanguage   string
	VendorListVersion uint16
	PurposesAllowed   IdSet
	VendorConsents    IdSet
}

func (TcfEuV1) SectionID() SectionID { return SectionTcfEuV1 }

func init() {
	registerSectionDecoder(SectionTcfEuV1, func(body string) (Section, error) {
		return decodeTcfEuV1(body)
	})
}

func decodeTcfEuV1(body string) (TcfEuV1, error) {
	var sec TcfEuV1
	segments := splitSegments(body)
	raw, err := decodeBase64URL(segments[0])
	if err != nil {
		return sec, errDecodeSegment(err)
	}
	d := NewDataReader(raw)

	if err := decodeCoreVersion(d, tcfEuV1Version); err != nil {
		return sec, err
	}
	if sec.Created, err = d.readDatetime(); err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}
	if sec.LastUpdated, err = d.readDatetime(); err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}
	cmpID, err := d.readFixedInteger(12)
	if err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}
	sec.CmpID = uint16(cmpID)
	cmpVersion, err := d.readFixedInteger(12)
	if err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}
	sec.CmpVersion = uint16(cmpVersion)
	consentScreen, err := d.readFixedInteger(6)
	if err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}
	sec.ConsentScreen = uint8(consentScreen)
	if sec.ConsentLanguage, err = d.readString(2); err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}
	vendorListVersion, err := d.readFixedInteger(12)
	if err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}
	sec.VendorListVersion = uint16(vendorListVersion)
	if sec.PurposesAllowed, err = d.readFixedBitfield(24); err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}
	if sec.VendorConsents, err = readTcfEuV1VendorConsents(d); err != nil {
		return sec, errSectionRead(SectionTcfEuV1, err)
	}

	return sec, nil
}

// readTcfEuV1VendorConsents reads TCF EU v1's oddly-shaped vendor
// consent field: a max vendor id, then either a fixed bitfield sized to
// that max, or a default-consent bit plus an exception list, in which
// case the final set is every vendor id up to the max for which
// defaultConsent XOR membership-in-the-exception-list is true.
func readTcfEuV1VendorConsents(d *DataReader) (IdSet, error) {
	maxVendorID, err := d.readFixedInteger(16)
	if err != nil {
		return IdSet{}, err
	}
	isRange, err := d.readBool()
	if err != nil {
		return IdSet{}, err
	}
	if !isRange {
		return d.readFixedBitfield(int(maxVendorID))
	}

	defaultConsent, err := d.readBool()
	if err != nil {
		return IdSet{}, err
	}
	exceptions, err := d.readIntegerRange()
	if err != nil {
		return IdSet{}, err
	}

	var ids []uint16
	for id := uint64(1); id <= maxVendorID; id++ {
		if defaultConsent != exceptions.Contains(uint16(id)) {
			ids = append(ids, uint16(id))
		}
	}
	return NewIdSet(ids), nil
}
