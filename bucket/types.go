package bucket

import (
	"errors"
	"fmt"
)

// Attrs is the open attribute mapping stored against a key.
type Attrs map[string]any

// Entry is one key and its attributes.
type Entry struct {
	Key   string `cbor:"1,keyasint"`
	Value Attrs  `cbor:"2,keyasint"`
}

// Index is an ordered, per bucket key/value index.
//
// Implementations are not safe for concurrent use.
type Index interface {
	// Insert adds key, or replaces its value if it is already present.
	// It returns true if key was not previously present.
	Insert(key string, value Attrs) bool
	// Search returns the entry for key. ok=false indicates key is absent.
	Search(key string) (e Entry, ok bool)
	// Walk calls fn for each entry in ascending key order, stopping early if
	// fn returns false.
	Walk(fn func(Entry) bool)
	// Len returns the number of distinct keys.
	Len() int
}

var (
	_ Index = (*Tree)(nil)
	_ Index = (*Balanced)(nil)
	_ Index = (*Ordered)(nil)
)

// Kind selects an Index implementation.
type Kind uint8

const (
	KindTree     Kind = 1
	KindBalanced Kind = 2
	KindOrdered  Kind = 3
)

var (
	ErrUnknownKind = errors.New("bucket: unknown index kind")
)

func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindBalanced:
		return "balanced"
	case KindOrdered:
		return "ordered"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// New returns an empty Index of the requested kind.
func New(kind Kind) (Index, error) {
	switch kind {
	case KindTree:
		return NewTree(), nil
	case KindBalanced:
		return NewBalanced(), nil
	case KindOrdered:
		return NewOrdered(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
}

// Keys returns the keys of idx in ascending order.
func Keys(idx Index) []string {
	keys := make([]string, 0, idx.Len())
	idx.Walk(func(e Entry) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Entries returns the entries of idx in ascending key order.
func Entries(idx Index) []Entry {
	entries := make([]Entry, 0, idx.Len())
	idx.Walk(func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}
