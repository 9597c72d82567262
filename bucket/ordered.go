package bucket

import (
	"github.com/google/btree"
)

// orderedDegree is the B-tree degree. Buckets are small, so a low degree keeps
// node scans short.
const orderedDegree = 8

// Ordered is an Index backed by a B-tree ordered map.
type Ordered struct {
	tree *btree.BTree
}

type orderedItem struct {
	*Entry
}

func (a orderedItem) Less(than btree.Item) bool {
	return a.Key < than.(orderedItem).Key
}

// NewOrdered returns an empty Ordered index.
func NewOrdered() *Ordered {
	return &Ordered{tree: btree.New(orderedDegree)}
}

func (o *Ordered) Len() int { return o.tree.Len() }

func (o *Ordered) Insert(key string, value Attrs) bool {
	if it := o.tree.Get(orderedItem{&Entry{Key: key}}); it != nil {
		e := it.(orderedItem).Entry
		e.Value = value
		return false
	}
	o.tree.ReplaceOrInsert(orderedItem{&Entry{Key: key, Value: value}})
	return true
}

func (o *Ordered) Search(key string) (Entry, bool) {
	it := o.tree.Get(orderedItem{&Entry{Key: key}})
	if it == nil {
		return Entry{}, false
	}
	return *it.(orderedItem).Entry, true
}

func (o *Ordered) Walk(fn func(Entry) bool) {
	o.tree.Ascend(func(it btree.Item) bool {
		return fn(*it.(orderedItem).Entry)
	})
}
