package uniquenames

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is a text-case transform applied to the fully joined name.
type Style int

// Available styles. The zero value leaves the name untouched.
const (
	NoStyle Style = iota
	LowerCase
	Capital
	UpperCase
)

var styleNames = map[Style]string{
	NoStyle:   "none",
	LowerCase: "lowerCase",
	Capital:   "capital",
	UpperCase: "upperCase",
}

// ParseStyle maps "lowerCase", "capital" and "upperCase" (case-insensitive)
// to their Style. Any other value, including "", yields NoStyle.
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowercase":
		return LowerCase
	case "capital":
		return Capital
	case "uppercase":
		return UpperCase
	default:
		return NoStyle
	}
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return styleNames[NoStyle]
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized values
// decode to NoStyle rather than failing.
func (s *Style) UnmarshalText(text []byte) error {
	*s = ParseStyle(string(text))
	return nil
}

// Format applies the style to name. For Capital, every segment between
// occurrences of separator gets an upper-case first rune and a lower-case rest.
// With an empty separator the whole name is one segment.
func (s Style) Format(name, separator string) string {
	if name == "" {
		return ""
	}

	// cases.Caser is stateful, so a fresh one is built per call.
	switch s {
	case LowerCase:
		return cases.Lower(language.Und).String(name)
	case UpperCase:
		return cases.Upper(language.Und).String(name)
	case Capital:
		if separator == "" {
			return capitalize(name)
		}
		segments := strings.Split(name, separator)
		for i, segment := range segments {
			segments[i] = capitalize(segment)
		}
		return strings.Join(segments, separator)
	default:
		return name
	}
}

func capitalize(segment string) string {
	if segment == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(segment)
	return string(unicode.ToUpper(r)) + cases.Lower(language.Und).String(segment[size:])
}
