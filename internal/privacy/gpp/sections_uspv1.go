package gpp

const (
	uspV1Version = 1
	uspV1Kind    = "uspv1"
)

// Flag is the three-valued yes/no/not-applicable character USP v1
// encodes each of its fields as.
type Flag uint8

const (
	FlagYes Flag = iota
	FlagNo
	FlagNotApplicable
)

func flagFromChar(c rune) (Flag, bool) {
	switch c {
	case 'Y':
		return FlagYes, true
	case 'N':
		return FlagNo, true
	case '-':
		return FlagNotApplicable, true
	default:
		return 0, false
	}
}

// UspV1 is the US Privacy string, version 1
// (https://github.com/InteractiveAdvertisingBureau/USPrivacy). Unlike
// every other section, its body is plain ASCII, never Base64URL
// encoded.
type UspV1 struct {
	OptOutNotice           Flag
	OptOutSale             Flag
	LSPACoveredTransaction Flag
}

func (UspV1) SectionID() SectionID { return SectionUspV1 }

func init() {
	registerSectionDecoder(SectionUspV1, func(body string) (Section, error) {
		return decodeUspV1(body)
	})
}

func decodeUspV1(body string) (UspV1, error) {
	var sec UspV1
	chars := []rune(body)
	if len(chars) == 0 {
		return sec, &SectionDecodeError{Kind: UnexpectedEndOfString, Body: body}
	}

	version := chars[0]
	if version < '0' || version > '9' {
		return sec, &SectionDecodeError{Kind: InvalidCharacter, Character: version, Kind_: uspV1Kind, Body: body}
	}
	if uint8(version-'0') != uspV1Version {
		return sec, &SectionDecodeError{Kind: InvalidSectionVersion, ExpectedVersion: uspV1Version, FoundVersion: uint8(version - '0')}
	}

	var err error
	if sec.OptOutNotice, err = uspV1NextFlag(chars, 1, body); err != nil {
		return sec, err
	}
	if sec.OptOutSale, err = uspV1NextFlag(chars, 2, body); err != nil {
		return sec, err
	}
	if sec.LSPACoveredTransaction, err = uspV1NextFlag(chars, 3, body); err != nil {
		return sec, err
	}

	return sec, nil
}

func uspV1NextFlag(chars []rune, index int, body string) (Flag, error) {
	if index >= len(chars) {
		return 0, &SectionDecodeError{Kind: UnexpectedEndOfString, Body: body}
	}
	flag, ok := flagFromChar(chars[index])
	if !ok {
		return 0, &SectionDecodeError{Kind: InvalidCharacter, Character: chars[index], Kind_: uspV1Kind, Body: body}
	}
	return flag, nil
}
