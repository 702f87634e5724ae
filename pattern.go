package patterns

import (
	"github.com/gnoswap-labs/patterns/internal/chain"
	"github.com/gnoswap-labs/patterns/syntax"
)

// Element is anything that can take part in a pattern.
type Element interface {
	Pattern() Pattern
}

// Pattern is an immutable, ordered sequence of pattern nodes. The zero value
// is the empty pattern, which matches the empty string and renders nothing.
//
// Patterns are values: Then returns a new Pattern and never changes the
// receiver, so a pattern may be reused as a building block any number of
// times.
type Pattern struct {
	nodes chain.Chain[node]
}

func patternOf(n node) Pattern {
	return Pattern{nodes: chain.Of(n)}
}

// classPattern wraps a class. A class without contents renders nothing.
func classPattern(e classExpr) Pattern {
	if e.content.IsEmpty() {
		return Pattern{}
	}
	return patternOf(classNode{expr: e})
}

// Pattern returns p itself, so that a Pattern is an Element.
func (p Pattern) Pattern() Pattern { return p }

// Len returns the number of top-level nodes.
func (p Pattern) Len() int { return p.nodes.Len() }

// IsEmpty reports whether p has no nodes.
func (p Pattern) IsEmpty() bool { return p.nodes.IsEmpty() }

// Then returns p followed by elems.
func (p Pattern) Then(elems ...Element) Pattern {
	out := p.nodes
	for _, e := range elems {
		if e == nil {
			continue
		}
		out = out.Concat(e.Pattern().nodes)
	}
	return Pattern{nodes: out}
}

// Concat returns the elements in sequence. nil elements are skipped.
func Concat(elems ...Element) Pattern {
	return Pattern{}.Then(elems...)
}

// Text matches s literally. Metacharacters are escaped when rendering.
// It panics if s is not valid UTF-8.
func Text(s string) Pattern {
	if s == "" {
		return Pattern{}
	}
	if err := checkText("text", s); err != nil {
		panic(err)
	}
	return patternOf(textNode{text: s})
}

// Repeat returns p quantified by q. A non-atomic p is wrapped in a
// noncapturing group. The zero Quantifier returns p unchanged.
func (p Pattern) Repeat(q Quantifier) Pattern {
	if q.kind == syntax.QuantNone || p.IsEmpty() {
		return p
	}
	return patternOf(quantNode{content: p, q: q})
}

// Maybe is Repeat(ZeroOrOne()).
func (p Pattern) Maybe() Pattern { return p.Repeat(ZeroOrOne()) }

// MaybeMany is Repeat(ZeroOrMore()).
func (p Pattern) MaybeMany() Pattern { return p.Repeat(ZeroOrMore()) }

// OneMany is Repeat(OneOrMore()).
func (p Pattern) OneMany() Pattern { return p.Repeat(OneOrMore()) }

// Repeat quantifies the sequence of elems.
func Repeat(q Quantifier, elems ...Element) Pattern {
	return Concat(elems...).Repeat(q)
}

func Maybe(elems ...Element) Pattern     { return Repeat(ZeroOrOne(), elems...) }
func MaybeMany(elems ...Element) Pattern { return Repeat(ZeroOrMore(), elems...) }
func OneMany(elems ...Element) Pattern   { return Repeat(OneOrMore(), elems...) }

// MaybeLazy and friends are the lazy counterparts of Maybe, MaybeMany and
// OneMany.
func MaybeLazy(elems ...Element) Pattern     { return Repeat(ZeroOrOne().Lazy(), elems...) }
func MaybeManyLazy(elems ...Element) Pattern { return Repeat(ZeroOrMore().Lazy(), elems...) }
func OneManyLazy(elems ...Element) Pattern   { return Repeat(OneOrMore().Lazy(), elems...) }

func token(k syntax.Kind) Pattern { return patternOf(tokenNode{kind: k}) }

// AnyChar matches any character except a newline: `.`.
func AnyChar() Pattern { return token(syntax.AnyChar) }

// AnyInvariant matches any character regardless of options: `[\s\S]`.
func AnyInvariant() Pattern { return token(syntax.AnyInvariant) }

// Anchors.

func StartOfInput() Pattern                   { return token(syntax.StartOfInput) }
func EndOfInput() Pattern                     { return token(syntax.EndOfInput) }
func EndOfInputOrBeforeFinalNewLine() Pattern { return token(syntax.EndOfInputOrLF) }
func StartOfLine() Pattern                    { return token(syntax.StartOfLine) }
func EndOfLine() Pattern                      { return token(syntax.EndOfLine) }
func PreviousMatchEnd() Pattern               { return token(syntax.PrevMatchEnd) }
func WordBoundary() Pattern                   { return token(syntax.WordBoundary) }
func NotWordBoundary() Pattern                { return token(syntax.NotWordBound) }

// String renders p with DefaultSettings.
func (p Pattern) String() string {
	return p.Render(DefaultSettings())
}
