package patterns

import (
	"fmt"

	"github.com/gnoswap-labs/patterns/syntax"
)

// CharPattern is a single atomic character class: a character, a character
// code, a shorthand class, a Unicode category or a Unicode block. It is usable
// on its own and as character class content.
type CharPattern struct {
	c contributor
	// negated is only used by characters and character codes, whose opposite
	// has no shorthand and renders as [^c].
	negated bool
}

func charPattern(k syntax.Kind) CharPattern {
	return CharPattern{c: contributor{kind: k}}
}

// Char matches the character r. It panics if r is not a Unicode scalar
// value; use CharCode for computed values.
func Char(r rune) CharPattern {
	mustRune("char", r)
	return CharPattern{c: contributor{kind: syntax.Char, r: r}}
}

// NotChar matches any character except r.
func NotChar(r rune) CharPattern {
	return Char(r).Not()
}

// CharCode matches the UTF-16 code unit n, rendered as a hexadecimal escape.
func CharCode(n int) (CharPattern, error) {
	code, err := checkCode("code", n)
	if err != nil {
		return CharPattern{}, err
	}
	return CharPattern{c: contributor{kind: syntax.CharCode, r: rune(code)}}, nil
}

func Digit() CharPattern         { return charPattern(syntax.Digit) }
func NotDigit() CharPattern      { return charPattern(syntax.NotDigit) }
func WordChar() CharPattern      { return charPattern(syntax.WordChar) }
func NotWordChar() CharPattern   { return charPattern(syntax.NotWordChar) }
func WhiteSpace() CharPattern    { return charPattern(syntax.WhiteSpace) }
func NotWhiteSpace() CharPattern { return charPattern(syntax.NotWhiteSpace) }

// InCategory matches a character of the Unicode general category c.
func InCategory(c syntax.GeneralCategory) (CharPattern, error) {
	g, err := Category(c)
	if err != nil {
		return CharPattern{}, err
	}
	cp, _ := g.single()
	return CharPattern{c: cp}, nil
}

// InBlock matches a character of the Unicode named block b.
func InBlock(b syntax.NamedBlock) (CharPattern, error) {
	g, err := Block(b)
	if err != nil {
		return CharPattern{}, err
	}
	cp, _ := g.single()
	return CharPattern{c: cp}, nil
}

// Kind returns the construct the pattern renders as.
func (p CharPattern) Kind() syntax.Kind {
	if p.negated {
		return syntax.NotChar
	}
	return p.c.kind
}

// Not returns the semantic opposite: \d and \D, \p{L} and \P{L},
// a and [^a]. Not is its own inverse.
func (p CharPattern) Not() CharPattern {
	switch p.c.kind {
	case syntax.Char, syntax.CharCode:
		p.negated = !p.negated
	default:
		p.c.kind, _ = p.c.kind.Negate()
	}
	return p
}

// Pattern returns p as a pattern element. The zero CharPattern is empty.
func (p CharPattern) Pattern() Pattern {
	switch {
	case p.c.kind == syntax.None:
		return Pattern{}
	case p.negated:
		return classPattern(classExpr{negative: true, content: groupingOf(p.c)})
	case p.c.kind == syntax.Char || p.c.kind == syntax.CharCode:
		return patternOf(atomNode{c: p.c})
	default:
		return classPattern(classExpr{content: groupingOf(p.c)})
	}
}

func (p CharPattern) String() string {
	return p.Pattern().String()
}

func (p CharPattern) asClass() (classExpr, error) {
	if p.c.kind == syntax.None {
		return classExpr{}, fmt.Errorf("%w: empty char pattern", ErrNilOperand)
	}
	return classExpr{negative: p.negated, content: groupingOf(p.c)}, nil
}
