package hashtable

/*

# A fixed size hash table with ordered buckets

Table routes each string key to one of a fixed number of buckets using a
deterministic hash (see package keyhash), and resolves collisions inside the
bucket with an ordered index (see package bucket) rather than a chain.

	key --keyhash--> slot i --> bucket.Index (created on first insert)

The bucket array never grows and slots are never emptied: a slot is either
absent, or populated from its first insert until the table is discarded.

## Operations

- Insert(key, attrs): replace the attributes of an existing key, or add it.
- Search(key): the entry for key, or ok=false for an absent key (whether its
  bucket is empty or merely lacks the key).
- Show(w): a diagnostic dump of every populated bucket, in slot order, each
  bucket in ascending key order.

Dump and EncodeDump provide the same diagnostic view as a value and as
deterministic CBOR. They are snapshots for inspection; there is no way to load
a table from them.

## Concurrency

A Table is intended for a single owner. Insert into a Balanced bucket mutates
the sorted list and then relinks the whole tree, so concurrent callers must
serialize every Insert and Search on a given table.

*/
