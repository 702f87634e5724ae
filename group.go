package patterns

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/patterns/internal/chain"
	"github.com/gnoswap-labs/patterns/syntax"
)

func group(k syntax.Kind, elems []Element) Pattern {
	return patternOf(groupNode{kind: k, content: Concat(elems...)})
}

// Group is a numbered capturing group: (...).
func Group(elems ...Element) Pattern {
	return group(syntax.NumberedGroup, elems)
}

// NamedGroup is a named capturing group: (?<name>...).
func NamedGroup(name string, elems ...Element) (Pattern, error) {
	if err := syntax.ValidateGroupName(name); err != nil {
		return Pattern{}, err
	}
	return patternOf(groupNode{kind: syntax.NamedGroup, name: name, content: Concat(elems...)}), nil
}

// NonCapturing is (?:...).
func NonCapturing(elems ...Element) Pattern {
	return group(syntax.NoncapturingGroup, elems)
}

// Atomic is the nonbacktracking group (?>...).
func Atomic(elems ...Element) Pattern {
	return group(syntax.NonbacktrackingGrp, elems)
}

// BalancingGroup is (?<name-previous>...): it deletes the last capture of
// previous and, when name is not empty, captures the text between them as
// name.
func BalancingGroup(name, previous string, elems ...Element) (Pattern, error) {
	if name != "" {
		if err := syntax.ValidateGroupName(name); err != nil {
			return Pattern{}, err
		}
	}
	if err := syntax.ValidateGroupName(previous); err != nil {
		return Pattern{}, fmt.Errorf("previous group: %w", err)
	}
	return patternOf(groupNode{
		kind:    syntax.BalancingGroup,
		name:    name,
		name2:   previous,
		content: Concat(elems...),
	}), nil
}

// GroupOptions applies inline options to the group content only:
// (?on-off:...).
func GroupOptions(on, off syntax.InlineOptions, elems ...Element) (Pattern, error) {
	if err := checkOptions(on, off); err != nil {
		return Pattern{}, err
	}
	return patternOf(groupNode{kind: syntax.GroupOptions, on: on, off: off, content: Concat(elems...)}), nil
}

// Options switches inline options for the rest of the enclosing group:
// (?on-off).
func Options(on, off syntax.InlineOptions) (Pattern, error) {
	if err := checkOptions(on, off); err != nil {
		return Pattern{}, err
	}
	return patternOf(optionsNode{on: on, off: off}), nil
}

func checkOptions(on, off syntax.InlineOptions) error {
	switch {
	case !on.IsValid() || !off.IsValid():
		return fmt.Errorf("%w: unknown option bits %#x/%#x", ErrInvalidOptions, uint8(on), uint8(off))
	case on == 0 && off == 0:
		return fmt.Errorf("%w: no option set", ErrInvalidOptions)
	case on&off != 0:
		return fmt.Errorf("%w: %q both enabled and disabled", ErrInvalidOptions, (on & off).Letters())
	}
	return nil
}

// Assert is the positive lookahead (?=...).
func Assert(elems ...Element) Pattern { return group(syntax.Assertion, elems) }

// NotAssert is the negative lookahead (?!...).
func NotAssert(elems ...Element) Pattern { return group(syntax.NotAssertion, elems) }

// AssertBack is the positive lookbehind (?<=...).
func AssertBack(elems ...Element) Pattern { return group(syntax.AssertionBack, elems) }

// NotAssertBack is the negative lookbehind (?<!...).
func NotAssertBack(elems ...Element) Pattern { return group(syntax.NotAssertionBack, elems) }

// Alternation matches any one of the branches: a|b|c. It is wrapped in a
// noncapturing group whenever it shares its sequence with other nodes.
func Alternation(branches ...Element) Pattern {
	var c chain.Chain[Pattern]
	for _, b := range branches {
		if b == nil {
			continue
		}
		c = c.Append(b.Pattern())
	}
	if c.IsEmpty() {
		return Pattern{}
	}
	return patternOf(altNode{branches: c})
}

// AnyOf is an alternation that is always grouped: (?:a|b|c).
func AnyOf(branches ...Element) Pattern {
	alt := Alternation(branches...)
	if alt.IsEmpty() {
		return alt
	}
	return NonCapturing(alt)
}

// IfGroup matches yes if the group name has captured, no otherwise:
// (?(name)yes|no). no may be nil.
func IfGroup(name string, yes, no Element) (Pattern, error) {
	if err := syntax.ValidateGroupName(name); err != nil {
		return Pattern{}, err
	}
	n := condNode{name: name, yes: elementPattern(yes)}
	if no != nil {
		n.no, n.hasNo = no.Pattern(), true
	}
	return patternOf(n), nil
}

// IfAssert matches yes if test matches at the current position, no
// otherwise: (?(test)yes|no). no may be nil.
func IfAssert(test, yes, no Element) (Pattern, error) {
	t := elementPattern(test)
	if t.IsEmpty() {
		return Pattern{}, fmt.Errorf("%w: condition test", ErrNilOperand)
	}
	n := condNode{test: t, yes: elementPattern(yes)}
	if no != nil {
		n.no, n.hasNo = no.Pattern(), true
	}
	return patternOf(n), nil
}

// elementPattern converts a possibly nil element.
func elementPattern(e Element) Pattern {
	if e == nil {
		return Pattern{}
	}
	return e.Pattern()
}

// Backreference matches the text last captured by group number n: \n.
func Backreference(n int) (Pattern, error) {
	if n <= 0 {
		return Pattern{}, fmt.Errorf("%w: group number %d is not positive", ErrInvalidGroupName, n)
	}
	if err := checkCount("group number", n); err != nil {
		return Pattern{}, err
	}
	return patternOf(refNode{number: n}), nil
}

// NamedBackreference matches the text last captured by the named group:
// \k<name>.
func NamedBackreference(name string) (Pattern, error) {
	if err := syntax.ValidateGroupName(name); err != nil {
		return Pattern{}, err
	}
	return patternOf(refNode{name: name}), nil
}

// Comment is the inline comment (?#text). text cannot contain ')' or a line
// break.
func Comment(text string) (Pattern, error) {
	if i := strings.IndexAny(text, ")\r\n"); i >= 0 {
		return Pattern{}, fmt.Errorf("%w: %q at offset %d in %q", ErrInvalidComment, text[i], i, text)
	}
	return patternOf(commentNode{text: text}), nil
}
