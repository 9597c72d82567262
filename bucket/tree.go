package bucket

// Tree is an unbalanced binary search tree whose shape follows the order in
// which keys arrive.
type Tree struct {
	root *Node
	n    int
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

func (t *Tree) Len() int { return t.n }

// Depth returns the depth of the tree. Worst case it equals Len().
func (t *Tree) Depth() int { return Depth(t.root) }

// Insert places key at the first empty child slot reached by a strict
// less/greater descent. If the descent meets key, the value is replaced and no
// node is added.
func (t *Tree) Insert(key string, value Attrs) bool {
	if t.root == nil {
		t.root = &Node{Entry: Entry{Key: key, Value: value}}
		t.n++
		return true
	}

	cur := t.root
	for {
		switch {
		case key < cur.Key:
			if cur.Left == nil {
				cur.Left = &Node{Entry: Entry{Key: key, Value: value}}
				t.n++
				return true
			}
			cur = cur.Left
		case key > cur.Key:
			if cur.Right == nil {
				cur.Right = &Node{Entry: Entry{Key: key, Value: value}}
				t.n++
				return true
			}
			cur = cur.Right
		default:
			cur.Value = value
			return false
		}
	}
}

func (t *Tree) Search(key string) (Entry, bool) {
	n := find(t.root, key)
	if n == nil {
		return Entry{}, false
	}
	return n.Entry, true
}

func (t *Tree) Walk(fn func(Entry) bool) {
	walk(t.root, fn)
}
