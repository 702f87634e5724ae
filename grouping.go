package patterns

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/gnoswap-labs/patterns/internal/chain"
	"github.com/gnoswap-labs/patterns/syntax"
)

// contributor is one atomic piece of a character class body. The kind tag
// selects which payload fields are meaningful:
//
//	Char, CharCode        r
//	Text                  text
//	CharRange             first, last, code
//	Digit ... NotWhiteSpace
//	Category, NotCategory category
//	Block, NotBlock       block
type contributor struct {
	kind     syntax.Kind
	r        rune
	code     bool
	text     string
	first    rune
	last     rune
	category syntax.GeneralCategory
	block    syntax.NamedBlock
}

// isShorthand reports whether the contributor has its own token that is
// valid outside brackets.
func (c contributor) isShorthand() bool {
	switch c.kind {
	case syntax.Digit, syntax.NotDigit, syntax.WordChar, syntax.NotWordChar,
		syntax.WhiteSpace, syntax.NotWhiteSpace,
		syntax.Category, syntax.NotCategory, syntax.Block, syntax.NotBlock:
		return true
	default:
		return false
	}
}

// CharGrouping is an immutable, ordered list of character class contents:
// characters, literal runs, ranges, shorthand classes, Unicode categories and
// blocks. It renders only inside a CharGroup.
type CharGrouping struct {
	items chain.Chain[contributor]
}

func groupingOf(c contributor) CharGrouping {
	return CharGrouping{items: chain.Of(c)}
}

// Chars returns a grouping of every character of s, e.g. "abc" for [abc].
// s must not be empty.
func Chars(s string) (CharGrouping, error) {
	if s == "" {
		return CharGrouping{}, fmt.Errorf("%w: chars", ErrEmptyChars)
	}
	if err := checkText("chars", s); err != nil {
		return CharGrouping{}, err
	}
	return groupingOf(contributor{kind: syntax.Text, text: s}), nil
}

// GroupingChar returns a grouping of the single character r. It panics if r
// is not a Unicode scalar value; use GroupingCode for computed values.
func GroupingChar(r rune) CharGrouping {
	mustRune("char", r)
	return groupingOf(contributor{kind: syntax.Char, r: r})
}

// GroupingCode returns a grouping of the UTF-16 code unit n, rendered as a
// hexadecimal escape.
func GroupingCode(n int) (CharGrouping, error) {
	code, err := checkCode("code", n)
	if err != nil {
		return CharGrouping{}, err
	}
	return groupingOf(contributor{kind: syntax.CharCode, r: rune(code)}), nil
}

// CharRange returns the grouping first-last. first must not be greater
// than last.
func CharRange(first, last rune) (CharGrouping, error) {
	if err := checkRune("first", first); err != nil {
		return CharGrouping{}, err
	}
	if err := checkRune("last", last); err != nil {
		return CharGrouping{}, err
	}
	if first > last {
		return CharGrouping{}, fmt.Errorf("%w: first %q is greater than last %q", ErrInvalidRange, first, last)
	}
	return groupingOf(contributor{kind: syntax.CharRange, first: first, last: last}), nil
}

// CodeRange is CharRange over UTF-16 code units, both rendered as
// hexadecimal escapes.
func CodeRange(first, last int) (CharGrouping, error) {
	f, err := checkCode("first", first)
	if err != nil {
		return CharGrouping{}, err
	}
	l, err := checkCode("last", last)
	if err != nil {
		return CharGrouping{}, err
	}
	if f > l {
		return CharGrouping{}, fmt.Errorf("%w: first %#04x is greater than last %#04x", ErrInvalidRange, first, last)
	}
	return groupingOf(contributor{kind: syntax.CharRange, first: rune(f), last: rune(l), code: true}), nil
}

// Category returns the grouping \p{c}.
func Category(c syntax.GeneralCategory) (CharGrouping, error) {
	if !c.IsValid() {
		return CharGrouping{}, fmt.Errorf("%w: general category %d", ErrUnknownProperty, c)
	}
	return groupingOf(contributor{kind: syntax.Category, category: c}), nil
}

// NotCategory returns the grouping \P{c}.
func NotCategory(c syntax.GeneralCategory) (CharGrouping, error) {
	g, err := Category(c)
	if err != nil {
		return g, err
	}
	return groupingOf(contributor{kind: syntax.NotCategory, category: c}), nil
}

// Block returns the grouping \p{IsName}.
func Block(b syntax.NamedBlock) (CharGrouping, error) {
	if !b.IsValid() {
		return CharGrouping{}, fmt.Errorf("%w: named block %d", ErrUnknownProperty, b)
	}
	return groupingOf(contributor{kind: syntax.Block, block: b}), nil
}

// CategoryNamed is Category for a designation such as "Lu".
func CategoryNamed(designation string) (CharGrouping, error) {
	c, ok := syntax.ParseCategory(designation)
	if !ok {
		return CharGrouping{}, unknownProperty("general category", designation, syntax.SuggestCategories(designation))
	}
	return Category(c)
}

// BlockNamed is Block for a designation such as "IsGreekandCoptic". The
// "Is" prefix may be left out.
func BlockNamed(designation string) (CharGrouping, error) {
	b, ok := syntax.ParseBlock(designation)
	if !ok {
		return CharGrouping{}, unknownProperty("named block", designation, syntax.SuggestBlocks(designation))
	}
	return Block(b)
}

func unknownProperty(what, designation string, candidates []string) error {
	if len(candidates) == 0 {
		return fmt.Errorf("%w: %s %q", ErrUnknownProperty, what, designation)
	}
	return fmt.Errorf("%w: %s %q (did you mean %s?)", ErrUnknownProperty, what, designation, strings.Join(candidates, ", "))
}

// NotBlock returns the grouping \P{IsName}.
func NotBlock(b syntax.NamedBlock) (CharGrouping, error) {
	g, err := Block(b)
	if err != nil {
		return g, err
	}
	return groupingOf(contributor{kind: syntax.NotBlock, block: b}), nil
}

// Grouping merges the contents of class operands into one grouping. Every
// operand must be usable as class content: positive groups without a
// subtraction, groupings, and every CharPattern except a negated character.
func Grouping(ops ...ClassOperand) (CharGrouping, error) {
	if len(ops) == 0 {
		return CharGrouping{}, fmt.Errorf("%w: grouping", ErrEmptyChars)
	}
	var out CharGrouping
	for i, op := range ops {
		g, err := classContent(op)
		if err != nil {
			return CharGrouping{}, fmt.Errorf("operand %d: %w", i, err)
		}
		out = out.Then(g)
	}
	return out, nil
}

// Then splices the contents of others after g's.
func (g CharGrouping) Then(others ...CharGrouping) CharGrouping {
	out := g.items
	for _, o := range others {
		out = out.Concat(o.items)
	}
	return CharGrouping{items: out}
}

// IsEmpty reports whether the grouping has no contents. Only the zero value
// is empty.
func (g CharGrouping) IsEmpty() bool {
	return g.items.IsEmpty()
}

// Pattern returns the grouping as the positive character group [...].
func (g CharGrouping) Pattern() Pattern {
	return classPattern(classExpr{content: g})
}

// String renders the grouping as a positive character group.
func (g CharGrouping) String() string {
	return g.Pattern().String()
}

func (g CharGrouping) asClass() (classExpr, error) {
	if g.IsEmpty() {
		return classExpr{}, fmt.Errorf("%w: empty grouping", ErrNilOperand)
	}
	return classExpr{content: g}, nil
}

// single returns the only contributor of a one-element grouping.
func (g CharGrouping) single() (contributor, bool) {
	if g.items.Len() != 1 {
		return contributor{}, false
	}
	return g.items.At(0), true
}

// checkRune rejects surrogates and values past the last code point. They
// have no literal form and would otherwise be written as U+FFFD.
func checkRune(arg string, r rune) error {
	if !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %s %#x is not a Unicode scalar value", ErrCodeOutOfRange, arg, r)
	}
	return nil
}

func mustRune(arg string, r rune) {
	if err := checkRune(arg, r); err != nil {
		panic(err)
	}
}

func checkText(arg, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s %q is not valid UTF-8", ErrCodeOutOfRange, arg, s)
	}
	return nil
}

func checkCode(arg string, code int) (uint16, error) {
	v, err := safecast.Conv[uint16](code)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %d is not a UTF-16 code unit", ErrCodeOutOfRange, arg, code)
	}
	return v, nil
}
