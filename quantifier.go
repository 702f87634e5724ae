package patterns

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/gnoswap-labs/patterns/syntax"
)

// Quantifier is a repetition suffix. The zero value means "exactly once"
// and renders nothing.
type Quantifier struct {
	kind syntax.QuantifierKind
	n    int
	m    int
	lazy bool
}

// ZeroOrOne is `?`.
func ZeroOrOne() Quantifier { return Quantifier{kind: syntax.QuantMaybe} }

// ZeroOrMore is `*`.
func ZeroOrMore() Quantifier { return Quantifier{kind: syntax.QuantMaybeMany} }

// OneOrMore is `+`.
func OneOrMore() Quantifier { return Quantifier{kind: syntax.QuantOneMany} }

// Exactly is `{n}`.
func Exactly(n int) (Quantifier, error) {
	if err := checkCount("n", n); err != nil {
		return Quantifier{}, err
	}
	return Quantifier{kind: syntax.QuantCount, n: n}, nil
}

// AtLeast is `{n,}`.
func AtLeast(n int) (Quantifier, error) {
	if err := checkCount("n", n); err != nil {
		return Quantifier{}, err
	}
	return Quantifier{kind: syntax.QuantCountFrom, n: n}, nil
}

// Between is `{n,m}`; m must not be less than n.
func Between(n, m int) (Quantifier, error) {
	if err := checkCount("n", n); err != nil {
		return Quantifier{}, err
	}
	if err := checkCount("m", m); err != nil {
		return Quantifier{}, err
	}
	if m < n {
		return Quantifier{}, fmt.Errorf("%w: m (%d) is less than n (%d)", ErrInvalidCount, m, n)
	}
	return Quantifier{kind: syntax.QuantCountRange, n: n, m: m}, nil
}

// Lazy returns a copy of q that prefers the fewest repetitions.
// Lazy on the zero Quantifier has no effect.
func (q Quantifier) Lazy() Quantifier {
	if q.kind != syntax.QuantNone {
		q.lazy = true
	}
	return q
}

// Kind returns the repetition kind.
func (q Quantifier) Kind() syntax.QuantifierKind { return q.kind }

// IsLazy reports whether the lazy marker is set.
func (q Quantifier) IsLazy() bool { return q.lazy }

// Bounds returns the numeric bounds; unused bounds are zero.
func (q Quantifier) Bounds() (n, m int) { return q.n, q.m }

func (q Quantifier) String() string {
	return syntax.QuantifierToken(q.kind, q.n, q.m, q.lazy)
}

// checkCount rejects negative counts and counts the dialect cannot store.
func checkCount(arg string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s (%d) is negative", ErrInvalidCount, arg, n)
	}
	if _, err := safecast.Conv[int32](n); err != nil {
		return fmt.Errorf("%w: %s (%d): %v", ErrInvalidCount, arg, n, err)
	}
	return nil
}
