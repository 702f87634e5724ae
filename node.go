package patterns

import (
	"unicode/utf8"

	"github.com/gnoswap-labs/patterns/internal/chain"
	"github.com/gnoswap-labs/patterns/syntax"
)

// node is one element of a Pattern. The set of variants is closed; the
// renderer switches over all of them.
type node interface {
	isNode()
}

// textNode is a literal run, escaped at render time.
type textNode struct {
	text string
}

// atomNode is a single character or character code outside a class.
type atomNode struct {
	c contributor
}

// tokenNode is a fixed token: an anchor, AnyChar or AnyInvariant.
type tokenNode struct {
	kind syntax.Kind
}

type classNode struct {
	expr classExpr
}

// groupNode is every parenthesised construct with a content sequence.
// name2 is only used by balancing groups, on and off only by group options.
type groupNode struct {
	kind    syntax.Kind
	name    string
	name2   string
	on, off syntax.InlineOptions
	content Pattern
}

type quantNode struct {
	content Pattern
	q       Quantifier
}

type altNode struct {
	branches chain.Chain[Pattern]
}

// condNode is (?(name)yes|no) when test is empty, (?(test)yes|no) otherwise.
type condNode struct {
	name  string
	test  Pattern
	yes   Pattern
	no    Pattern
	hasNo bool
}

// refNode references a group by number when number is positive, by name
// otherwise.
type refNode struct {
	number int
	name   string
}

type commentNode struct {
	text string
}

type optionsNode struct {
	on, off syntax.InlineOptions
}

func (textNode) isNode()    {}
func (atomNode) isNode()    {}
func (tokenNode) isNode()   {}
func (classNode) isNode()   {}
func (groupNode) isNode()   {}
func (quantNode) isNode()   {}
func (altNode) isNode()     {}
func (condNode) isNode()    {}
func (refNode) isNode()     {}
func (commentNode) isNode() {}
func (optionsNode) isNode() {}

// isAtomic reports whether a quantifier can follow p directly. Everything
// else is wrapped in a noncapturing group first.
func isAtomic(p Pattern) bool {
	if p.nodes.Len() != 1 {
		return false
	}
	switch n := p.nodes.At(0).(type) {
	case textNode:
		return utf8.RuneCountInString(n.text) == 1
	case atomNode, classNode, condNode, refNode:
		return true
	case tokenNode:
		return n.kind == syntax.AnyChar || n.kind == syntax.AnyInvariant
	case groupNode:
		switch n.kind {
		case syntax.Assertion, syntax.NotAssertion, syntax.AssertionBack, syntax.NotAssertionBack:
			return false
		default:
			return true
		}
	default:
		return false
	}
}
