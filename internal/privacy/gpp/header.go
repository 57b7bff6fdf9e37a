package gpp

const (
	gppHeaderType    = 3
	gppHeaderVersion = 1
)

// gppHeader is the decoded form of a GPP string's leading segment: a
// type tag (always 3), a version (always 1), and the ordered list of
// section ids the body declares, encoded as a Fibonacci range.
type gppHeader struct {
	Version    uint8
	SectionIDs []SectionID
}

// parseHeader decodes the first, mandatory segment of a GPP string: a
// 6-bit type tag, a 6-bit version, and a Fibonacci range giving the
// section ids present in the rest of the string, in the order they
// appear.
func parseHeader(segment string) (*gppHeader, error) {
	if segment == "" {
		return nil, ErrNoHeaderFound
	}
	raw, err := decodeBase64URL(segment)
	if err != nil {
		return nil, &GPPDecodeError{Kind: HeaderRead, Err: err}
	}
	d := NewDataReader(raw)

	typeTag, err := d.readFixedInteger(6)
	if err != nil {
		return nil, &GPPDecodeError{Kind: HeaderRead, Err: err}
	}
	if typeTag != gppHeaderType {
		return nil, &GPPDecodeError{Kind: InvalidHeaderType, Found: uint8(typeTag)}
	}

	version, err := d.readFixedInteger(6)
	if err != nil {
		return nil, &GPPDecodeError{Kind: HeaderRead, Err: err}
	}
	if version != gppHeaderVersion {
		return nil, &GPPDecodeError{Kind: InvalidGPPVersion, Found: uint8(version)}
	}

	ids, err := d.readFibonacciRange()
	if err != nil {
		return nil, &GPPDecodeError{Kind: HeaderRead, Err: err}
	}

	sectionIDs := make([]SectionID, 0, ids.Len())
	for _, id := range ids.Ids() {
		if _, ok := sectionIDNames[SectionID(id)]; !ok || id > 0xff {
			return nil, &GPPDecodeError{Kind: UnsupportedHeaderSectionID, SectionID: uint8(id)}
		}
		sectionIDs = append(sectionIDs, SectionID(id))
	}

	return &gppHeader{Version: uint8(version), SectionIDs: sectionIDs}, nil
}
