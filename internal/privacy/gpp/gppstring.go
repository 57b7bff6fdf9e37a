package gpp

import "strings"

// GPPString is a parsed GPP consent string: a validated header plus the
// raw, still-encoded body of each section the header declares. Decoding
// an individual section into its typed schema is deferred until
// DecodeSection or Decode is called, so parsing a string with many
// sections but only reading one of them does no wasted work.
type GPPString struct {
	version    uint8
	sectionIDs []SectionID
	sections   map[SectionID]string
	raw        string
}

// Parse splits a GPP consent string into its header and section bodies
// and validates the header, but does not decode any section body.
func Parse(s string) (*GPPString, error) {
	parts := strings.Split(s, "~")
	header, err := parseHeader(parts[0])
	if err != nil {
		return nil, err
	}

	bodies := parts[1:]
	if len(bodies) != len(header.SectionIDs) {
		return nil, &GPPDecodeError{
			Kind:     IdSectionMismatch,
			Ids:      len(header.SectionIDs),
			Sections: len(bodies),
		}
	}

	sections := make(map[SectionID]string, len(bodies))
	for i, id := range header.SectionIDs {
		sections[id] = bodies[i]
	}

	return &GPPString{
		version:    header.Version,
		sectionIDs: header.SectionIDs,
		sections:   sections,
		raw:        s,
	}, nil
}

// SectionIDs returns the section ids declared by the header, in the
// order they appear there.
func (g *GPPString) SectionIDs() []SectionID {
	return g.sectionIDs
}

// Section returns the raw, still-encoded body of a section, and
// whether the header declared that section at all.
func (g *GPPString) Section(id SectionID) (string, bool) {
	body, ok := g.sections[id]
	return body, ok
}

// String returns the original, unparsed GPP consent string.
func (g *GPPString) String() string {
	return g.raw
}

// DecodeSection decodes the named section's body into its schema and
// returns it as a Section. It fails if the header did not declare the
// section, or if no schema is registered for it.
func (g *GPPString) DecodeSection(id SectionID) (Section, error) {
	body, ok := g.Section(id)
	if !ok {
		return nil, errMissingSection(id)
	}
	decode, ok := sectionDecoders[id]
	if !ok {
		return nil, errUnsupportedSectionID(id)
	}
	return decode(body)
}

// Decode decodes the section matching T's SectionID into a T. T must be
// one of the concrete section schema types defined in this package.
func Decode[T Section](g *GPPString) (T, error) {
	var zero T
	sec, err := g.DecodeSection(zero.SectionID())
	if err != nil {
		return zero, err
	}
	typed, ok := sec.(T)
	if !ok {
		return zero, errInvalidFieldValue("matching section type", "mismatched section type")
	}
	return typed, nil
}

// DecodedSection pairs a section id with the outcome of decoding it,
// used by DecodeAllSections so one bad section never hides the results
// of the others.
type DecodedSection struct {
	ID      SectionID
	Section Section
	Err     error
}

// DecodeAllSections decodes every section the header declared. Each
// section's result is independent: one section's decode error does not
// prevent the others from being decoded and reported.
func (g *GPPString) DecodeAllSections() []DecodedSection {
	results := make([]DecodedSection, 0, len(g.sectionIDs))
	for _, id := range g.sectionIDs {
		sec, err := g.DecodeSection(id)
		results = append(results, DecodedSection{ID: id, Section: sec, Err: err})
	}
	return results
}
