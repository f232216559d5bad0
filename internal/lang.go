package dvdbind

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LangCode is a two character ISO 639-1 code packed big-endian into a
// uint16, the way the attribute records and the navigation library
// carry languages.
type LangCode uint16

// LangCodeOf packs a two letter code. Longer or shorter inputs yield
// zero, which the native side treats as unspecified.
func LangCodeOf(code string) LangCode {
	if len(code) != 2 {
		return 0
	}
	return LangCode(uint16(code[0])<<8 | uint16(code[1]))
}

// String returns the two letter code, or the empty string for the
// unspecified and 0xffff sentinels.
func (c LangCode) String() string {
	if c == 0 || c == 0xffff {
		return ""
	}
	return string([]byte{byte(c >> 8), byte(c)})
}

// Tag parses the code as a BCP 47 language tag.
func (c LangCode) Tag() (language.Tag, error) {
	s := c.String()
	if s == "" {
		return language.Und, nil
	}
	return language.Parse(s)
}

// DisplayName returns the language's English name, or the raw code
// when it does not parse.
func (c LangCode) DisplayName() string {
	tag, err := c.Tag()
	if err != nil || tag == language.Und {
		return c.String()
	}
	return display.English.Languages().Name(tag)
}

// Lang returns the language of an audio attribute record.
func (a *AudioAttr) Lang() LangCode {
	b := a.raw[:]
	off, err := descFor("audio_attr_t").OffsetOf("lang_code")
	if err != nil {
		panic(err)
	}
	// The disc stores the code big-endian; the accessor preserves the
	// byte order the characters were written in.
	return LangCode(uint16(b[off])<<8 | uint16(b[off+1]))
}

// Lang returns the language of a subpicture attribute record.
func (a *SubpAttr) Lang() LangCode {
	b := a.raw[:]
	off, err := descFor("subp_attr_t").OffsetOf("lang_code")
	if err != nil {
		panic(err)
	}
	return LangCode(uint16(b[off])<<8 | uint16(b[off+1]))
}
