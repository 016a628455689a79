// Package candidateindex indexes extracted candidates by their variant
// chain, so a report can answer "what utilities appear under hover:" or
// de-duplicate identical candidates across files without re-hashing the
// full string on every insert.
package candidateindex

import (
	"sort"
	"strings"
)

/*
Arena-based Trie Implementation

This implementation uses an arena-based memory allocation strategy to improve memory efficiency
and reduce garbage collection overhead in the trie data structure. Here's how it works:

1. Memory Allocation Efficiency:
	- This arena implementation pre-allocates a contiguous slice of nodes and manages them
	as a pool, dramatically reducing the number of separate allocations.
	- Nodes are stored in a single slice and referenced by index rather than pointers,
	which reduces memory overhead and improves locality.

2. Benefits:
	- Reduced GC Pressure: Fewer allocations mean less work for the garbage collector.
	- Improved Memory Locality: Related data is stored contiguously in memory, improving
		CPU cache utilization and reducing cache misses during traversal.
	- Reduced Memory Fragmentation: A single large allocation instead of many small ones
		minimizes memory fragmentation.
	- Smaller Memory Footprint: Using integer indices instead of pointers saves memory,
		especially on 64-bit systems where pointers are 8 bytes.

3. Implementation Details:
	- The Arena struct manages a slice of nodes where each node is referenced by its index.
	- New nodes are appended to the slice, and their index is used for referencing.
	- Child nodes are referenced by their index in the arena rather than by pointer.
*/

// NodeIndex is the index of a trie node within an Arena.
type NodeIndex int

// Arena is a memory pool that stores all trie nodes.
type Arena struct {
	nodes []arenaNode
}

type arenaNode struct {
	children map[string]NodeIndex
	count    int
}

// NewArena creates a new, empty arena with a root node at index 0.
func NewArena() *Arena {
	a := &Arena{nodes: make([]arenaNode, 0, 1024)}
	a.nodes = append(a.nodes, arenaNode{children: make(map[string]NodeIndex)})
	return a
}

func (a *Arena) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode{children: make(map[string]NodeIndex)})
	return idx
}

// Insert records one occurrence of sequence, incrementing the occurrence
// count at the terminal node.
func (a *Arena) Insert(sequence []string) {
	current := NodeIndex(0)
	for _, part := range sequence {
		node := &a.nodes[current]
		childIdx, exists := node.children[part]
		if !exists {
			childIdx = a.newNode()
			node.children[part] = childIdx
		}
		current = childIdx
	}
	a.nodes[current].count++
}

// CountUnder returns the total occurrence count of every sequence that
// starts with prefix.
func (a *Arena) CountUnder(prefix []string) int {
	current := NodeIndex(0)
	for _, part := range prefix {
		node := &a.nodes[current]
		childIdx, exists := node.children[part]
		if !exists {
			return 0
		}
		current = childIdx
	}
	return a.sumSubtree(current)
}

func (a *Arena) sumSubtree(idx NodeIndex) int {
	total := a.nodes[idx].count
	for _, child := range a.nodes[idx].children {
		total += a.sumSubtree(child)
	}
	return total
}

// DebugString returns a deterministic string representation of the trie,
// useful for tests and for debugging index construction.
func (a *Arena) DebugString() string {
	return a.debugStringNode(NodeIndex(0))
}

func (a *Arena) debugStringNode(idx NodeIndex) string {
	node := a.nodes[idx]
	var sb strings.Builder

	if node.count > 0 {
		sb.WriteString("*")
	}

	keys := make([]string, 0, len(node.children))
	for key := range node.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString("(")
		sb.WriteString(a.debugStringNode(node.children[key]))
		sb.WriteString(")")
	}

	return sb.String()
}

// Index is a candidate-aware wrapper around Arena: it splits a candidate
// string like "hover:focus:bg-red-500" into its variant chain plus utility
// ("hover", "focus", "bg-red-500") before inserting, so the trie groups
// candidates sharing a variant prefix together regardless of utility.
type Index struct {
	arena *Arena
}

// New returns an empty Index.
func New() *Index {
	return &Index{arena: NewArena()}
}

// Add splits candidate on ':' and inserts the resulting path.
func (idx *Index) Add(candidate string) {
	idx.arena.Insert(splitCandidate(candidate))
}

// CountWithVariantPrefix returns how many indexed candidates share the
// given variant chain, e.g. CountWithVariantPrefix("hover", "focus").
func (idx *Index) CountWithVariantPrefix(variants ...string) int {
	return idx.arena.CountUnder(variants)
}

// DebugString returns a deterministic string representation of the index.
func (idx *Index) DebugString() string {
	return idx.arena.DebugString()
}

// splitCandidate splits a candidate on top-level ':' boundaries. Colons
// inside brackets or parens (arbitrary values/variants, e.g.
// "[&:hover]:flex") are not split points: they belong to the segment they
// appear in, not to a new variant step.
func splitCandidate(candidate string) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(candidate); i++ {
		switch candidate[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, candidate[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, candidate[start:])
	return parts
}
