package syntax

import "strings"

// InlineOptions is a set of the option letters accepted by `(?imnsx-imnsx)`.
type InlineOptions uint8

const (
	IgnoreCase              InlineOptions = 1 << iota // i
	Multiline                                         // m
	ExplicitCapture                                   // n
	Singleline                                        // s
	IgnorePatternWhitespace                           // x

	// AllInlineOptions is the union of every supported letter.
	AllInlineOptions = IgnoreCase | Multiline | ExplicitCapture | Singleline | IgnorePatternWhitespace
)

var optionLetters = []struct {
	opt    InlineOptions
	letter byte
}{
	{IgnoreCase, 'i'},
	{Multiline, 'm'},
	{ExplicitCapture, 'n'},
	{Singleline, 's'},
	{IgnorePatternWhitespace, 'x'},
}

// Letters returns the option letters of o in canonical order.
func (o InlineOptions) Letters() string {
	var sb strings.Builder
	for _, ol := range optionLetters {
		if o&ol.opt != 0 {
			sb.WriteByte(ol.letter)
		}
	}
	return sb.String()
}

// IsValid reports whether o only holds known options.
func (o InlineOptions) IsValid() bool {
	return o&^AllInlineOptions == 0
}

// OptionsToken renders the option part of an inline options construct:
// the enabled letters, then '-' and the disabled letters if any.
func OptionsToken(on, off InlineOptions) string {
	s := on.Letters()
	if off != 0 {
		s += "-" + off.Letters()
	}
	return s
}
