package hashtable

import (
	"fmt"
	"io"

	"github.com/generaldave/DataStructures/bucket"
)

// rooted is implemented by the binary tree bucket kinds.
type rooted interface {
	Root() *bucket.Node
}

// Show writes every populated bucket, in slot order, to w. Each entry is
// written, in ascending key order, as
//
//	index: <slot>
//	key: <key>
//	<attr>: <value>   (one line per attribute, in name order)
//	<children>        (tree kinds only: Left and Right | Left | Right | No child)
//
// followed by a blank line.
func (t *Table) Show(w io.Writer) error {
	for i, idx := range t.buckets {
		if idx == nil {
			continue
		}
		if err := showBucket(w, uint32(i), idx); err != nil {
			return err
		}
	}
	return nil
}

func showBucket(w io.Writer, i uint32, idx bucket.Index) error {
	var err error
	emit := func(s fmt.Stringer) bool {
		_, err = fmt.Fprintf(w, "index: %d\n%s\n\n", i, s)
		return err == nil
	}

	if r, ok := idx.(rooted); ok {
		bucket.WalkNodes(r.Root(), func(n *bucket.Node) bool { return emit(n) })
		return err
	}
	idx.Walk(func(e bucket.Entry) bool { return emit(e) })
	return err
}
