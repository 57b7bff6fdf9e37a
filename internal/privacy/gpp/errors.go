package gpp

import "fmt"

// GPPDecodeError is returned by Parse when the header itself cannot be
// decoded. It always identifies one of a small fixed set of failure
// kinds; Kind lets callers switch on the failure without a type
// assertion per variant, the way *pq.Error exposes a Code field instead
// of a distinct Go type per Postgres error class.
type GPPDecodeError struct {
	Kind GPPDecodeErrorKind

	// Found carries the unexpected type/version byte for
	// InvalidHeaderType and InvalidGPPVersion.
	Found uint8

	// SectionID carries the offending value for UnsupportedHeaderSectionID.
	SectionID uint8

	// Ids and Sections carry the mismatched counts for IdSectionMismatch.
	Ids, Sections int

	// Err wraps the underlying I/O failure for HeaderRead.
	Err error
}

type GPPDecodeErrorKind int

const (
	NoHeaderFound GPPDecodeErrorKind = iota
	InvalidHeaderType
	InvalidGPPVersion
	HeaderRead
	UnsupportedHeaderSectionID
	IdSectionMismatch
)

func (e *GPPDecodeError) Error() string {
	switch e.Kind {
	case NoHeaderFound:
		return "gpp: no header found"
	case InvalidHeaderType:
		return fmt.Sprintf("gpp: invalid header type: found %d, expected 3", e.Found)
	case InvalidGPPVersion:
		return fmt.Sprintf("gpp: invalid GPP version: found %d, expected 1", e.Found)
	case HeaderRead:
		return fmt.Sprintf("gpp: error reading header: %v", e.Err)
	case UnsupportedHeaderSectionID:
		return fmt.Sprintf("gpp: unsupported section id in header: %d", e.SectionID)
	case IdSectionMismatch:
		return fmt.Sprintf("gpp: header declares %d section ids but body has %d sections", e.Ids, e.Sections)
	default:
		return "gpp: unknown header error"
	}
}

func (e *GPPDecodeError) Unwrap() error {
	return e.Err
}

// ErrNoHeaderFound is returned when the input string has no leading
// header segment at all (an empty string).
var ErrNoHeaderFound = &GPPDecodeError{Kind: NoHeaderFound}

// SectionDecodeError is returned by DecodeSection, Decode, and
// DecodeAllSections when an individual section's body cannot be decoded.
type SectionDecodeError struct {
	Kind SectionDecodeErrorKind

	SectionID SectionID

	// Character, Kind_, Body carry detail for InvalidCharacter (USP v1 and
	// similar ASCII formats). Kind_ is named with a trailing underscore to
	// avoid colliding with the Kind field above; it holds the static tag
	// ("uspv1") the source code uses to disambiguate messages.
	Character rune
	Kind_     string
	Body      string

	// Expected/Found carry detail for InvalidSectionVersion.
	ExpectedVersion, FoundVersion uint8

	// SegmentVersion carries detail for UnknownSegmentVersion.
	SegmentVersion uint8

	// SegmentType carries detail for UnknownSegmentType and DuplicateSegmentType.
	SegmentType uint8

	// ExpectedValue/FoundValue carry detail for InvalidFieldValue.
	ExpectedValue, FoundValue string

	// Err wraps the underlying I/O or base64 failure for Read and DecodeSegment.
	Err error
}

type SectionDecodeErrorKind int

const (
	MissingSection SectionDecodeErrorKind = iota
	UnsupportedSectionID
	SectionRead
	UnexpectedEndOfString
	InvalidCharacter
	InvalidSectionVersion
	DecodeSegment
	UnknownSegmentVersion
	UnknownSegmentType
	DuplicateSegmentType
	InvalidFieldValue
)

func (e *SectionDecodeError) Error() string {
	switch e.Kind {
	case MissingSection:
		return fmt.Sprintf("gpp: missing section %v", e.SectionID)
	case UnsupportedSectionID:
		return fmt.Sprintf("gpp: unsupported section id %v", e.SectionID)
	case SectionRead:
		return fmt.Sprintf("gpp: error reading section %v: %v", e.SectionID, e.Err)
	case UnexpectedEndOfString:
		return fmt.Sprintf("gpp: unexpected end of string: %q", e.Body)
	case InvalidCharacter:
		return fmt.Sprintf("gpp: invalid %s character %q in %q", e.Kind_, e.Character, e.Body)
	case InvalidSectionVersion:
		return fmt.Sprintf("gpp: invalid section version: expected %d, found %d", e.ExpectedVersion, e.FoundVersion)
	case DecodeSegment:
		return fmt.Sprintf("gpp: error decoding segment: %v", e.Err)
	case UnknownSegmentVersion:
		return fmt.Sprintf("gpp: unknown segment version: %d", e.SegmentVersion)
	case UnknownSegmentType:
		return fmt.Sprintf("gpp: unknown segment type: %d", e.SegmentType)
	case DuplicateSegmentType:
		return fmt.Sprintf("gpp: duplicate segment type: %d", e.SegmentType)
	case InvalidFieldValue:
		return fmt.Sprintf("gpp: invalid field value: expected %s, found %s", e.ExpectedValue, e.FoundValue)
	default:
		return "gpp: unknown section error"
	}
}

func (e *SectionDecodeError) Unwrap() error {
	return e.Err
}

func errMissingSection(id SectionID) *SectionDecodeError {
	return &SectionDecodeError{Kind: MissingSection, SectionID: id}
}

func errUnsupportedSectionID(id SectionID) *SectionDecodeError {
	return &SectionDecodeError{Kind: UnsupportedSectionID, SectionID: id}
}

func errSectionRead(id SectionID, err error) *SectionDecodeError {
	return &SectionDecodeError{Kind: SectionRead, SectionID: id, Err: err}
}

func errDecodeSegment(err error) *SectionDecodeError {
	return &SectionDecodeError{Kind: DecodeSegment, Err: err}
}

func errUnknownSegmentVersion(version uint8) *SectionDecodeError {
	return &SectionDecodeError{Kind: UnknownSegmentVersion, SegmentVersion: version}
}

func errUnknownSegmentType(segmentType uint8) *SectionDecodeError {
	return &SectionDecodeError{Kind: UnknownSegmentType, SegmentType: segmentType}
}

func errDuplicateSegmentType(segmentType uint8) *SectionDecodeError {
	return &SectionDecodeError{Kind: DuplicateSegmentType, SegmentType: segmentType}
}

func errInvalidFieldValue(expected, found string) *SectionDecodeError {
	return &SectionDecodeError{Kind: InvalidFieldValue, ExpectedValue: expected, FoundValue: found}
}
