package chain

import "sync/atomic"

/*
Structurally shared append-only sequence

Every node family of the library (pattern elements, character grouping
contributors, substitution parts) is an ordered list that callers grow by
fluent concatenation: `a.Then(b).Then(c)`. Values must stay immutable, so a
naive implementation copies the whole list on every append and long chains
become quadratic.

Chain avoids that with the same trick the arena-based trie uses for its node
pool: all elements live in one backing slice, and a Chain value is only a
window `items[:n]` over it. The backing array additionally records how many
of its slots have been claimed. Appending to a Chain whose window ends exactly
at the claimed length extends the backing array in place; appending to any
other window (an older value that was already extended by someone else)
copies first. Either way, elements visible through an existing window are
never rewritten.

The claim is taken with a compare-and-swap before any slot is written, so
only one extension of a given window ever writes past it. Every other
extension, including one racing on another goroutine, copies. Slots that an
existing window can see are never written again, so a Chain can be read and
extended from many goroutines at once.
*/

// Chain is an immutable, ordered sequence of T.
// The zero value is an empty chain ready to use.
type Chain[T any] struct {
	items []T
	// claimed is shared by every Chain using the same backing array.
	claimed *atomic.Int64
}

// Of creates a chain holding items in order.
func Of[T any](items ...T) Chain[T] {
	var c Chain[T]
	return c.Append(items...)
}

// Len returns the number of elements in the chain.
func (c Chain[T]) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the chain has no elements.
func (c Chain[T]) IsEmpty() bool {
	return len(c.items) == 0
}

// At returns the i-th element.
func (c Chain[T]) At(i int) T {
	return c.items[i]
}

// Last returns the final element and true, or the zero T and false for an
// empty chain.
func (c Chain[T]) Last() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// Items returns the elements in authored order. The returned slice has its
// capacity clipped, so appending to it never disturbs the chain.
func (c Chain[T]) Items() []T {
	return c.items[:len(c.items):len(c.items)]
}

// Append returns a new chain holding c's elements followed by items.
// c itself is left unchanged.
func (c Chain[T]) Append(items ...T) Chain[T] {
	if len(items) == 0 {
		return c
	}

	if c.claimed != nil && cap(c.items)-len(c.items) >= len(items) {
		n := int64(len(c.items))
		if c.claimed.CompareAndSwap(n, n+int64(len(items))) {
			// the slots after c are ours now; nobody else can see them
			return Chain[T]{items: append(c.items, items...), claimed: c.claimed}
		}
	}

	merged := make([]T, len(c.items), growCap(len(c.items)+len(items)))
	copy(merged, c.items)
	merged = append(merged, items...)
	return fresh(merged)
}

// Concat returns a new chain holding c's elements followed by every
// element of others, in order.
func (c Chain[T]) Concat(others ...Chain[T]) Chain[T] {
	out := c
	for _, o := range others {
		out = out.Append(o.items...)
	}
	return out
}

func fresh[T any](items []T) Chain[T] {
	claimed := new(atomic.Int64)
	claimed.Store(int64(len(items)))
	return Chain[T]{items: items, claimed: claimed}
}

func growCap(n int) int {
	if n < 4 {
		return 4
	}
	return n + n/2
}
