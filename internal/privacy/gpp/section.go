package gpp

import "strings"

// SectionID identifies a section of a GPP string by the IAB's registered
// numeric id. Ids 3 and 4 are reserved for the GPP header and signal
// integrity mechanisms themselves and never appear as decodable section
// bodies.
type SectionID uint8

// Section id constants are named with a Section prefix, rather than
// bare schema names, so they don't collide with the decoded struct
// types themselves (e.g. SectionTcfEuV1 the id vs TcfEuV1 the struct).
const (
	SectionTcfEuV1            SectionID = 1
	SectionTcfEuV2            SectionID = 2
	SectionGppHeaderReserved  SectionID = 3
	SectionGppSignalIntegrity SectionID = 4
	SectionTcfCaV1            SectionID = 5
	SectionUspV1              SectionID = 6
	SectionUsNat              SectionID = 7
	SectionUsCa               SectionID = 8
	SectionUsVa               SectionID = 9
	SectionUsCo               SectionID = 10
	SectionUsUt               SectionID = 11
	SectionUsCt               SectionID = 12
	SectionUsFl               SectionID = 13
	SectionUsMt               SectionID = 14
	SectionUsOr               SectionID = 15
	SectionUsTx               SectionID = 16
	SectionUsDe               SectionID = 17
	SectionUsIa               SectionID = 18
	SectionUsNe               SectionID = 19
	SectionUsNh               SectionID = 20
	SectionUsNj               SectionID = 21
	SectionUsTn               SectionID = 22
)

var sectionIDNames = map[SectionID]string{
	SectionTcfEuV1:            "tcfeuv1",
	SectionTcfEuV2:            "tcfeuv2",
	SectionGppHeaderReserved:  "gppheader",
	SectionGppSignalIntegrity: "gppsignalintegrity",
	SectionTcfCaV1:            "tcfcav1",
	SectionUspV1:              "uspv1",
	SectionUsNat:              "usnat",
	SectionUsCa:               "usca",
	SectionUsVa:               "usva",
	SectionUsCo:               "usco",
	SectionUsUt:               "usut",
	SectionUsCt:               "usct",
	SectionUsFl:               "usfl",
	SectionUsMt:               "usmt",
	SectionUsOr:               "usor",
	SectionUsTx:               "ustx",
	SectionUsDe:               "usde",
	SectionUsIa:               "usia",
	SectionUsNe:               "usne",
	SectionUsNh:               "usnh",
	SectionUsNj:               "usnj",
	SectionUsTn:               "ustn",
}

func (id SectionID) String() string {
	if name, ok := sectionIDNames[id]; ok {
		return name
	}
	return "unknown"
}

// Section is implemented by every decoded section type. It lets
// DecodeSection return a single value regardless of which schema the
// section body decoded into.
type Section interface {
	SectionID() SectionID
}

// sectionDecoders maps a section id to the function that turns a raw,
// still-Base64URL-encoded body into its decoded Section. Populated by an
// init() in each section's own file so that adding a new schema never
// requires editing this file.
var sectionDecoders = map[SectionID]func(body string) (Section, error){}

func registerSectionDecoder(id SectionID, decode func(body string) (Section, error)) {
	sectionDecoders[id] = decode
}

// splitSegments splits a section body into its core segment and any
// dot-separated optional segments, in wire order.
func splitSegments(body string) []string {
	return strings.Split(body, ".")
}

// decodeCoreVersion reads the 6-bit version tag every core segment
// leads with and checks it against the schema's expected version.
func decodeCoreVersion(d *DataReader, expected uint8) error {
	v, err := d.readFixedInteger(6)
	if err != nil {
		return err
	}
	if uint8(v) != expected {
		return errUnknownSegmentVersion(uint8(v))
	}
	return nil
}

// decodeSegmentType reads the optional-segment type tag: 3 bits wide
// for the TCF family, 2 bits wide for US state sections.
func decodeSegmentType(d *DataReader, tagWidth int) (uint8, error) {
	v, err := d.readFixedInteger(tagWidth)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// decodeOptionalSegments walks the optional (post-core) segments of a
// body, decoding each segment's type tag and handing the rest of that
// segment's DataReader to the matching handler in segmentHandlers. It
// rejects an unknown type tag and a type tag seen twice.
func decodeOptionalSegments(segments []string, tagWidth int, segmentHandlers map[uint8]func(*DataReader) error) error {
	seen := make(map[uint8]bool, len(segmentHandlers))
	for _, segment := range segments {
		raw, err := decodeBase64URL(segment)
		if err != nil {
			return errDecodeSegment(err)
		}
		d := NewDataReader(raw)
		segmentType, err := decodeSegmentType(d, tagWidth)
		if err != nil {
			return err
		}
		if seen[segmentType] {
			return errDuplicateSegmentType(segmentType)
		}
		seen[segmentType] = true
		handler, ok := segmentHandlers[segmentType]
		if !ok {
			return errUnknownSegmentType(segmentType)
		}
		if err := handler(d); err != nil {
			return err
		}
	}
	return nil
}
