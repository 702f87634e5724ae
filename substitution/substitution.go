// Package substitution builds replacement patterns: the text that replaces
// each match, with references to what the match captured.
package substitution

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gnoswap-labs/patterns/internal/chain"
	"github.com/gnoswap-labs/patterns/syntax"
)

// Marker starts every substitution token. A literal marker is doubled.
const Marker = '$'

// ErrInvalidGroup is returned for group references that cannot be written.
var ErrInvalidGroup = errors.New("invalid group reference")

type partKind uint8

const (
	partText partKind = iota
	partNumber
	partName
	partWholeMatch
	partInput
	partBefore
	partAfter
	partLastGroup
)

var fixedTokens = [...]string{
	partWholeMatch: "$&",
	partInput:      "$_",
	partBefore:     "$`",
	partAfter:      "$'",
	partLastGroup:  "$+",
}

type part struct {
	kind   partKind
	text   string
	number int
}

// Element is anything that can take part in a substitution.
type Element interface {
	Substitution() Substitution
}

// Substitution is an immutable sequence of replacement tokens. The zero
// value is empty and replaces matches with nothing.
type Substitution struct {
	parts chain.Chain[part]
}

func of(p part) Substitution {
	return Substitution{parts: chain.Of(p)}
}

// Text inserts s literally.
func Text(s string) Substitution {
	if s == "" {
		return Substitution{}
	}
	return of(part{kind: partText, text: s})
}

// Group inserts the last capture of group number n. Group 0 is the whole
// match.
func Group(n int) (Substitution, error) {
	if n < 0 {
		return Substitution{}, fmt.Errorf("%w: group number %d is negative", ErrInvalidGroup, n)
	}
	return of(part{kind: partNumber, number: n}), nil
}

// NamedGroup inserts the last capture of the named group.
func NamedGroup(name string) (Substitution, error) {
	if err := syntax.ValidateGroupName(name); err != nil {
		return Substitution{}, fmt.Errorf("%w: %w", ErrInvalidGroup, err)
	}
	return of(part{kind: partName, text: name}), nil
}

func WholeMatch() Substitution        { return of(part{kind: partWholeMatch}) }
func EntireInput() Substitution       { return of(part{kind: partInput}) }
func BeforeMatch() Substitution       { return of(part{kind: partBefore}) }
func AfterMatch() Substitution        { return of(part{kind: partAfter}) }
func LastCapturedGroup() Substitution { return of(part{kind: partLastGroup}) }

// Must returns s or panics with err, for substitutions built from constants.
func Must(s Substitution, err error) Substitution {
	if err != nil {
		panic(err)
	}
	return s
}

// Substitution returns s itself, so that a Substitution is an Element.
func (s Substitution) Substitution() Substitution { return s }

// Then returns s followed by elems.
func (s Substitution) Then(elems ...Element) Substitution {
	out := s.parts
	for _, e := range elems {
		if e == nil {
			continue
		}
		out = out.Concat(e.Substitution().parts)
	}
	return Substitution{parts: out}
}

// Concat returns the elements in sequence.
func Concat(elems ...Element) Substitution {
	return Substitution{}.Then(elems...)
}

// Len returns the number of tokens.
func (s Substitution) Len() int { return s.parts.Len() }

// IsEmpty reports whether s has no tokens.
func (s Substitution) IsEmpty() bool { return s.parts.IsEmpty() }

// String renders the replacement pattern.
func (s Substitution) String() string {
	items := s.parts.Items()

	var sb strings.Builder
	for i, p := range items {
		switch p.kind {
		case partText:
			writeText(&sb, p.text)
		case partNumber:
			n := strconv.Itoa(p.number)
			if i+1 < len(items) && startsWithDigit(items[i+1]) {
				sb.WriteString("${" + n + "}")
			} else {
				sb.WriteString("$" + n)
			}
		case partName:
			sb.WriteString("${" + p.text + "}")
		default:
			sb.WriteString(fixedTokens[p.kind])
		}
	}
	return sb.String()
}

// startsWithDigit reports whether p renders with a leading ASCII digit,
// which would extend a preceding bare group number.
func startsWithDigit(p part) bool {
	return p.kind == partText && p.text[0] >= '0' && p.text[0] <= '9'
}

func writeText(sb *strings.Builder, s string) {
	for _, r := range s {
		if r == Marker {
			sb.WriteRune(Marker)
		}
		sb.WriteRune(r)
	}
}
