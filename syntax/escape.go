package syntax

import (
	"fmt"
	"strings"
)

// RangeSeparator joins the boundaries of a character range.
const RangeSeparator = '-'

// IsMeta reports whether r must be escaped outside a character class.
// Space and '#' are included so that output stays valid under the
// whitespace-ignoring option.
func IsMeta(r rune) bool {
	switch r {
	case '\\', '*', '+', '?', '|', '{', '}', '[', ']', '(', ')', '^', '$', '.', '#', ' ':
		return true
	default:
		return false
	}
}

// IsClassMeta reports whether r must be escaped inside a character class.
func IsClassMeta(r rune) bool {
	switch r {
	case '\\', ']', '^', RangeSeparator:
		return true
	default:
		return false
	}
}

func controlEscape(r rune) (string, bool) {
	switch r {
	case '\t':
		return `\t`, true
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\f':
		return `\f`, true
	case '\v':
		return `\v`, true
	case '\a':
		return `\a`, true
	case 0x1B:
		return `\e`, true
	}
	if r < 0x20 || r == 0x7F {
		return CharCodeToken(uint16(r)), true
	}
	return "", false
}

// CharCodeToken renders a UTF-16 code unit as a four digit hexadecimal
// escape, e.g. `\u00A0`.
func CharCodeToken(code uint16) string {
	return fmt.Sprintf(`\u%04X`, code)
}

// WriteRune appends r to sb, escaped for the given context.
func WriteRune(sb *strings.Builder, r rune, inClass bool) {
	if esc, ok := controlEscape(r); ok {
		sb.WriteString(esc)
		return
	}
	if (inClass && IsClassMeta(r)) || (!inClass && IsMeta(r)) {
		sb.WriteByte('\\')
	}
	sb.WriteRune(r)
}

// WriteText appends every rune of s to sb, escaped for the given context.
func WriteText(sb *strings.Builder, s string, inClass bool) {
	for _, r := range s {
		WriteRune(sb, r, inClass)
	}
}

// Escape returns s escaped for use outside a character class.
func Escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	WriteText(&sb, s, false)
	return sb.String()
}

// EscapeClass returns s escaped for use inside a character class.
func EscapeClass(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	WriteText(&sb, s, true)
	return sb.String()
}
