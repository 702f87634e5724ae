package trie

import "sort"

/*
Arena-based name index

The syntax table resolves Unicode category and block designations ("Lu",
"IsGreekandCoptic") back to their values. The index stores every designation
in a rune trie whose nodes live in one contiguous slice:

	- Nodes are referenced by their index in the arena rather than by pointer,
	  so building the index is a handful of slice appends instead of one
	  allocation per node.
	- The index is built once at package initialisation and only read
	  afterwards, so lookups from many goroutines need no locking.
*/

// NodeIndex represents the index of a trie node.
type NodeIndex int

const root NodeIndex = 0

// Arena stores all nodes of one index.
type Arena[V any] struct {
	nodes []arenaNode[V]
}

type arenaNode[V any] struct {
	children map[rune]NodeIndex
	value    V
	// isEnd marks a node that terminates a stored key.
	isEnd bool
}

// NewArena creates an empty index.
func NewArena[V any]() *Arena[V] {
	a := &Arena[V]{nodes: make([]arenaNode[V], 0, 256)}
	a.newNode()
	return a
}

func (a *Arena[V]) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode[V]{children: make(map[rune]NodeIndex)})
	return idx
}

// Insert stores v under key, replacing any previous value.
func (a *Arena[V]) Insert(key string, v V) {
	current := root
	for _, r := range key {
		child, ok := a.nodes[current].children[r]
		if !ok {
			child = a.newNode()
			a.nodes[current].children[r] = child
		}
		current = child
	}

	a.nodes[current].isEnd = true
	a.nodes[current].value = v
}

// find returns the node reached by walking key.
func (a *Arena[V]) find(key string) (NodeIndex, bool) {
	current := root
	for _, r := range key {
		child, ok := a.nodes[current].children[r]
		if !ok {
			return 0, false
		}
		current = child
	}
	return current, true
}

// Lookup returns the value stored under key.
func (a *Arena[V]) Lookup(key string) (V, bool) {
	idx, ok := a.find(key)
	if !ok || !a.nodes[idx].isEnd {
		var zero V
		return zero, false
	}
	return a.nodes[idx].value, true
}

// HasPrefix reports whether any stored key starts with prefix.
func (a *Arena[V]) HasPrefix(prefix string) bool {
	idx, ok := a.find(prefix)
	if !ok {
		return false
	}
	node := a.nodes[idx]
	return node.isEnd || len(node.children) > 0
}

// Keys returns the stored keys starting with prefix, sorted.
func (a *Arena[V]) Keys(prefix string) []string {
	start, ok := a.find(prefix)
	if !ok {
		return nil
	}

	type frame struct {
		idx  NodeIndex
		path string
	}
	var keys []string
	stack := []frame{{start, prefix}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := a.nodes[f.idx]
		if node.isEnd {
			keys = append(keys, f.path)
		}
		for r, child := range node.children {
			stack = append(stack, frame{child, f.path + string(r)})
		}
	}
	sort.Strings(keys)
	return keys
}

// Closest returns the stored keys sharing the longest possible prefix with
// key, sorted. It returns nil when no key starts with key's first rune.
func (a *Arena[V]) Closest(key string) []string {
	runes := []rune(key)
	for n := len(runes); n > 0; n-- {
		if prefix := string(runes[:n]); a.HasPrefix(prefix) {
			return a.Keys(prefix)
		}
	}
	return nil
}
