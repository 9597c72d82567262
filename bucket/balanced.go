package bucket

import (
	"slices"
	"strings"
)

// Balanced maintains a sorted, deduplicated node list and a tree derived from
// it. The tree is rebuilt by bisection whenever a new key is added, so its
// depth never exceeds MaxBalancedDepth(Len()).
type Balanced struct {
	root  *Node
	nodes []*Node

	// rebuilds counts full tree rebuilds, for diagnostics.
	rebuilds uint64
}

// NewBalanced returns an empty Balanced index.
func NewBalanced() *Balanced {
	return &Balanced{}
}

// Root returns the root node, or nil for an empty index.
func (b *Balanced) Root() *Node { return b.root }

func (b *Balanced) Len() int { return len(b.nodes) }

func (b *Balanced) Depth() int { return Depth(b.root) }

// Rebuilds returns how many times the tree has been rebuilt.
func (b *Balanced) Rebuilds() uint64 { return b.rebuilds }

// Insert adds key at its sorted position and rebuilds the tree. If key is
// already present only its value is replaced; the list order and the tree
// shape are unchanged, so there is nothing to rebuild.
func (b *Balanced) Insert(key string, value Attrs) bool {
	i, found := slices.BinarySearchFunc(b.nodes, key, func(n *Node, k string) int {
		return strings.Compare(n.Key, k)
	})
	if found {
		b.nodes[i].Value = value
		return false
	}
	b.nodes = slices.Insert(b.nodes, i, &Node{Entry: Entry{Key: key, Value: value}})
	b.rebuild()
	return true
}

func (b *Balanced) Search(key string) (Entry, bool) {
	n := find(b.root, key)
	if n == nil {
		return Entry{}, false
	}
	return n.Entry, true
}

// Walk enumerates the authoritative list, which is the in-order traversal of
// the tree.
func (b *Balanced) Walk(fn func(Entry) bool) {
	for _, n := range b.nodes {
		if !fn(n.Entry) {
			return
		}
	}
}

func (b *Balanced) rebuild() {
	b.root = build(b.nodes, 0, len(b.nodes)-1)
	b.rebuilds++
}

// build links nodes[start..end] (inclusive) into a height balanced tree and
// returns its root.
func build(nodes []*Node, start, end int) *Node {
	if start > end {
		return nil
	}
	mid := start + (end-start)/2
	n := nodes[mid]
	n.Left = build(nodes, start, mid-1)
	n.Right = build(nodes, mid+1, end)
	return n
}
