package comment

import "github.com/gnoswap-labs/patterns/syntax"

// LineInfo describes what a single physical line of formatted pattern
// output holds.
type LineInfo struct {
	Kind       syntax.Kind
	Quantifier syntax.QuantifierKind
	Min        int
	Max        int
	Lazy       bool
}

// IsQuantified reports whether the line carries a quantifier.
func (li LineInfo) IsQuantified() bool {
	return li.Quantifier != syntax.QuantNone
}

// Description returns the comment text for the line, without the leading
// "# ".
func (li LineInfo) Description() string {
	desc := li.Kind.Description()
	if li.Kind == syntax.GroupEnd && li.IsQuantified() {
		desc = "group"
	}
	if !li.IsQuantified() {
		return desc
	}
	desc += ", " + syntax.QuantifierDescription(li.Quantifier, li.Min, li.Max)
	if li.Lazy {
		desc += ", " + syntax.LazyDescription
	}
	return desc
}

// Collection holds one LineInfo per output line, in line order.
type Collection struct {
	lines []LineInfo
}

// Add records the next line.
func (c *Collection) Add(li LineInfo) {
	c.lines = append(c.lines, li)
}

// SetLast replaces the info of the most recently added line. It is a no-op
// for an empty collection.
func (c *Collection) SetLast(li LineInfo) {
	if len(c.lines) == 0 {
		return
	}
	c.lines[len(c.lines)-1] = li
}

// Len returns the number of recorded lines.
func (c *Collection) Len() int {
	return len(c.lines)
}

// At returns the info of line i.
func (c *Collection) At(i int) LineInfo {
	return c.lines[i]
}
