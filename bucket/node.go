package bucket

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Node is a binary search tree node. Each node exclusively owns its children.
type Node struct {
	Entry
	Left  *Node
	Right *Node
}

// String renders the key and then each attribute in name order.
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString("key: ")
	b.WriteString(e.Key)
	for _, name := range slices.Sorted(maps.Keys(e.Value)) {
		fmt.Fprintf(&b, "\n%s: %v", name, e.Value[name])
	}
	return b.String()
}

// String renders the entry followed by which children are present.
func (n *Node) String() string {
	s := n.Entry.String()
	switch {
	case n.Left != nil && n.Right != nil:
		return s + "\nLeft and Right"
	case n.Left != nil:
		return s + "\nLeft"
	case n.Right != nil:
		return s + "\nRight"
	default:
		return s + "\nNo child"
	}
}

// WalkNodes visits the subtree rooted at n in order, stopping early if fn
// returns false.
func WalkNodes(n *Node, fn func(*Node) bool) {
	walkNodes(n, fn)
}

func walkNodes(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !walkNodes(n.Left, fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return walkNodes(n.Right, fn)
}

// find descends from root to the node holding key, or returns nil.
func find(root *Node, key string) *Node {
	cur := root
	for cur != nil {
		switch {
		case key < cur.Key:
			cur = cur.Left
		case key > cur.Key:
			cur = cur.Right
		default:
			return cur
		}
	}
	return nil
}

// walk visits the entries of the subtree rooted at n in order.
func walk(n *Node, fn func(Entry) bool) {
	walkNodes(n, func(n *Node) bool { return fn(n.Entry) })
}

// Depth returns the number of nodes on the longest root to leaf path. An
// empty tree has depth 0.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Depth(n.Left), Depth(n.Right))
}

// Shape is the nested pre-order form of a subtree: the node key, then the
// shapes of its left and right children. nil represents an absent child.
type Shape struct {
	Key   string
	Left  *Shape
	Right *Shape
}

// Preorder returns the Shape of the subtree rooted at n, or nil for an empty
// subtree.
func Preorder(n *Node) *Shape {
	if n == nil {
		return nil
	}
	return &Shape{
		Key:   n.Key,
		Left:  Preorder(n.Left),
		Right: Preorder(n.Right),
	}
}

func (s *Shape) String() string {
	if s == nil {
		return "-"
	}
	if s.Left == nil && s.Right == nil {
		return s.Key
	}
	return fmt.Sprintf("(%s %s %s)", s.Key, s.Left, s.Right)
}
