package syntax

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidGroupName is returned for names that violate the group name
// grammar.
var ErrInvalidGroupName = errors.New("invalid group name")

// IdentifierBoundary selects how a group name is delimited.
type IdentifierBoundary uint8

const (
	// AngleBrackets renders names as <name>.
	AngleBrackets IdentifierBoundary = iota
	// Apostrophes renders names as 'name'.
	Apostrophes
)

// Open returns the delimiter written before a name.
func (b IdentifierBoundary) Open() string {
	if b == Apostrophes {
		return "'"
	}
	return "<"
}

// Close returns the delimiter written after a name.
func (b IdentifierBoundary) Close() string {
	if b == Apostrophes {
		return "'"
	}
	return ">"
}

func (b IdentifierBoundary) String() string {
	switch b {
	case AngleBrackets:
		return "angle"
	case Apostrophes:
		return "apostrophe"
	default:
		return "unknown"
	}
}

// ParseIdentifierBoundary accepts the names produced by String.
func ParseIdentifierBoundary(s string) (IdentifierBoundary, error) {
	switch s {
	case "angle", "":
		return AngleBrackets, nil
	case "apostrophe":
		return Apostrophes, nil
	default:
		return AngleBrackets, fmt.Errorf("unknown identifier boundary %q", s)
	}
}

// IsWordChar reports whether r matches `\w` in the dialect: letters,
// decimal digits, connector punctuation and nonspacing marks.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Mn, r)
}

// ValidateGroupName checks a group name. A name either starts with a word
// character that is not a digit and continues with word characters, or it is
// a positive decimal group number without leading zeros.
func ValidateGroupName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidGroupName)
	}

	first, _ := utf8.DecodeRuneInString(name)
	if unicode.Is(unicode.Nd, first) {
		if _, ok := ParseGroupNumber(name); !ok {
			return fmt.Errorf("%w: %q starts with a digit but is not a group number", ErrInvalidGroupName, name)
		}
		return nil
	}

	for i, r := range name {
		if !IsWordChar(r) {
			return fmt.Errorf("%w: %q has non-word character %q at offset %d", ErrInvalidGroupName, name, r, i)
		}
	}
	return nil
}

// ParseGroupNumber parses a positive ASCII decimal group number without
// leading zeros.
func ParseGroupNumber(name string) (int, bool) {
	if name == "" || name[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(name)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
