package hashtable

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/generaldave/DataStructures/bucket"
	"github.com/generaldave/DataStructures/keyhash"
)

// Table is a fixed size hash table whose buckets are ordered indices.
//
// A Table is not safe for concurrent use.
type Table struct {
	opts    Options
	hasher  keyhash.Hasher
	log     logger.Logger
	buckets []bucket.Index
	n       int
}

// New returns an empty table with Buckets() slots of the configured hasher.
func New(opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Hasher == nil {
		return nil, ErrHasherNotProvided
	}
	m := o.Hasher.Buckets()
	if m == 0 {
		return nil, ErrNoBuckets
	}
	if c, ok := o.Hasher.(keyhash.Checker); ok {
		if err := c.Check(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadHasher, err)
		}
	}
	// Fail now rather than on the first insert into each slot.
	if _, err := bucket.New(o.Kind); err != nil {
		return nil, err
	}

	t := &Table{
		opts:    o,
		hasher:  o.Hasher,
		log:     o.Log,
		buckets: make([]bucket.Index, m),
	}
	return t, nil
}

// Modulus returns the fixed number of bucket slots.
func (t *Table) Modulus() uint32 { return uint32(len(t.buckets)) }

func (t *Table) Kind() bucket.Kind { return t.opts.Kind }

// Len returns the number of distinct keys in the table.
func (t *Table) Len() int { return t.n }

// BucketOf returns the slot key is placed in.
//
// A hasher that breaks its contract by returning an index >= Buckets() is
// reduced modulo the slot count rather than trusted.
func (t *Table) BucketOf(key string) uint32 {
	return t.hasher.Bucket(key) % uint32(len(t.buckets))
}

// Bucket returns the index held in slot i. ok=false indicates the slot is
// absent (never inserted into) or out of range.
func (t *Table) Bucket(i uint32) (idx bucket.Index, ok bool) {
	if uint64(i) >= uint64(len(t.buckets)) {
		return nil, false
	}
	idx = t.buckets[i]
	return idx, idx != nil
}

// Populated returns the populated slot numbers in ascending order.
func (t *Table) Populated() []uint32 {
	var slots []uint32
	for i, idx := range t.buckets {
		if idx != nil {
			slots = append(slots, uint32(i))
		}
	}
	return slots
}

// Insert adds key with value, or replaces the value of key if it is already
// present. The value is stored as given; it is not copied.
func (t *Table) Insert(key string, value bucket.Attrs) {
	i := t.BucketOf(key)
	idx := t.buckets[i]
	if idx == nil {
		// The kind was checked by New.
		idx, _ = bucket.New(t.opts.Kind)
		t.buckets[i] = idx
		t.debugf("bucket %d created (%s)", i, t.opts.Kind)
	}
	if idx.Insert(key, value) {
		t.n++
		if t.opts.Kind == bucket.KindBalanced {
			t.debugf("bucket %d rebuilt for %q, %d keys", i, key, idx.Len())
		}
		return
	}
	t.debugf("bucket %d updated %q", i, key)
}

// Search returns the entry for key. ok=false indicates key is absent.
func (t *Table) Search(key string) (e bucket.Entry, ok bool) {
	idx := t.buckets[t.BucketOf(key)]
	if idx == nil {
		return bucket.Entry{}, false
	}
	return idx.Search(key)
}

func (t *Table) debugf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.Debugf(format, args...)
}
