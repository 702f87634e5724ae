package patterns

import (
	"fmt"

	"github.com/gnoswap-labs/patterns/syntax"
)

// ClassOperand is implemented by everything that can render as a character
// class: CharGrouping, CharGroup, CharSubtraction and CharPattern.
type ClassOperand interface {
	Element
	asClass() (classExpr, error)
}

// classExpr is the common shape of every character class:
//
//	[^content-[excluded]]
//
// excluded is nil for a plain group and non-nil for a subtraction, in which
// case it may itself carry a further exclusion.
type classExpr struct {
	negative bool
	content  CharGrouping
	excluded *classExpr
}

// isPlain reports whether e is a positive group without subtraction, i.e.
// whether its contents may be merged into another class.
func (e classExpr) isPlain() bool {
	return !e.negative && e.excluded == nil
}

// shorthand returns the contributor of a positive single-shorthand class,
// which renders without brackets.
func (e classExpr) shorthand() (contributor, bool) {
	if !e.isPlain() {
		return contributor{}, false
	}
	c, ok := e.content.single()
	if !ok || !c.isShorthand() {
		return contributor{}, false
	}
	return c, true
}

func (e classExpr) kind() syntax.Kind {
	switch {
	case e.excluded != nil:
		return syntax.Subtraction
	case e.negative:
		if c, ok := e.content.single(); ok && (c.kind == syntax.Char || c.kind == syntax.CharCode) {
			return syntax.NotChar
		}
		return syntax.NotCharGroup
	}
	if c, ok := e.shorthand(); ok {
		return c.kind
	}
	return syntax.CharGroup
}

// classContent returns the contents of op for use inside another class.
// Negated and subtracted classes have no such contents.
func classContent(op ClassOperand) (CharGrouping, error) {
	if op == nil {
		return CharGrouping{}, fmt.Errorf("%w: nil class operand", ErrNilOperand)
	}
	e, err := op.asClass()
	if err != nil {
		return CharGrouping{}, err
	}
	if !e.isPlain() {
		return CharGrouping{}, fmt.Errorf("%w: %s", ErrNotClassContent, op.Pattern())
	}
	return e.content, nil
}

func excludedOf(op ClassOperand) (*classExpr, error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil excluded operand", ErrNilOperand)
	}
	e, err := op.asClass()
	if err != nil {
		return nil, fmt.Errorf("excluded operand: %w", err)
	}
	return &e, nil
}

// CharGroup is a character class with polarity: [contents] or [^contents].
// The zero value is empty and renders nothing.
type CharGroup struct {
	negative bool
	content  CharGrouping
}

// CharGroupOf returns the positive group of the merged operand contents.
func CharGroupOf(ops ...ClassOperand) (CharGroup, error) {
	g, err := Grouping(ops...)
	if err != nil {
		return CharGroup{}, err
	}
	return CharGroup{content: g}, nil
}

// NotCharGroupOf returns the negative group of the merged operand contents.
func NotCharGroupOf(ops ...ClassOperand) (CharGroup, error) {
	g, err := CharGroupOf(ops...)
	if err != nil {
		return CharGroup{}, err
	}
	return g.Not(), nil
}

// Not returns the group with inverted polarity over the same contents.
func (g CharGroup) Not() CharGroup {
	g.negative = !g.negative
	return g
}

// IsNegative reports whether the group matches characters not in its
// contents.
func (g CharGroup) IsNegative() bool { return g.negative }

// Contents returns the grouping the group is built from.
func (g CharGroup) Contents() CharGrouping { return g.content }

// Except returns the subtraction [g-[excluded]]. excluded may itself be a
// subtraction, which nests to the right: [a-[b-[c]]].
func (g CharGroup) Except(excluded ClassOperand) (CharSubtraction, error) {
	base, err := g.asClass()
	if err != nil {
		return CharSubtraction{}, fmt.Errorf("base group: %w", err)
	}
	ex, err := excludedOf(excluded)
	if err != nil {
		return CharSubtraction{}, err
	}
	base.excluded = ex
	return CharSubtraction{expr: base}, nil
}

// Pattern returns the group as a pattern element.
func (g CharGroup) Pattern() Pattern {
	return classPattern(classExpr{negative: g.negative, content: g.content})
}

func (g CharGroup) String() string {
	return g.Pattern().String()
}

func (g CharGroup) asClass() (classExpr, error) {
	if g.content.IsEmpty() {
		return classExpr{}, fmt.Errorf("%w: empty character group", ErrNilOperand)
	}
	return classExpr{negative: g.negative, content: g.content}, nil
}

// CharSubtraction is a character group minus another class: [base-[excluded]].
// Build one with CharGroup.Except.
type CharSubtraction struct {
	expr classExpr
}

// Except removes further characters from s. When both the current excluded
// class and the new operand are positive plain groups, their contents are
// merged, so (a-b)-c renders as [a-[bc]]. Any other combination cannot be
// expressed in the dialect and is rejected.
func (s CharSubtraction) Except(excluded ClassOperand) (CharSubtraction, error) {
	if s.expr.excluded == nil {
		return CharSubtraction{}, fmt.Errorf("%w: empty subtraction", ErrNilOperand)
	}
	ex, err := excludedOf(excluded)
	if err != nil {
		return CharSubtraction{}, err
	}
	if !s.expr.excluded.isPlain() || !ex.isPlain() {
		return CharSubtraction{}, fmt.Errorf("%w: cannot merge %s into %s", ErrInvalidSubtraction, excluded.Pattern(), s)
	}
	merged := classExpr{content: s.expr.excluded.content.Then(ex.content)}
	out := s.expr
	out.excluded = &merged
	return CharSubtraction{expr: out}, nil
}

// Base returns the group that characters are subtracted from.
func (s CharSubtraction) Base() CharGroup {
	return CharGroup{negative: s.expr.negative, content: s.expr.content}
}

// Pattern returns the subtraction as a pattern element.
func (s CharSubtraction) Pattern() Pattern {
	return classPattern(s.expr)
}

func (s CharSubtraction) String() string {
	return s.Pattern().String()
}

func (s CharSubtraction) asClass() (classExpr, error) {
	if s.expr.excluded == nil {
		return classExpr{}, fmt.Errorf("%w: empty subtraction", ErrNilOperand)
	}
	return s.expr, nil
}
