package bucket

/*

# Per bucket ordered indices

A bucket holds every entry whose key hashes to the same slot of a table. Rather
than chaining collisions in a list, each bucket is an ordered index over its
local key set, supporting insert, update in place, point lookup and ascending
enumeration.

Three variants share the Index contract:

- Tree: a plain binary search tree in insertion order. Cheap inserts, but its
  depth depends on the arrival order of keys (sorted arrivals degrade it to a
  list).
- Balanced: keeps an authoritative, deduplicated, key ordered list of nodes and
  rebuilds the tree from that list after every new key, by recursive bisection.
  The resulting depth is always ceil(log2(n+1)).
- Ordered: a B-tree ordered map, for callers who want logarithmic bounds
  without the O(n) rebuild on insert.

## Core invariants

For Tree and Balanced, for every node:

1. all keys in the left subtree compare less than the node key
2. all keys in the right subtree compare greater than the node key
3. no key appears twice in one bucket

Keys compare in Go string order (bytewise, which for valid UTF-8 is code point
order).

## Update in place

Insert of a key that is already present replaces the value wholesale (no
merge). The existence check happens inside each variant's own descent, so an
Index is safe to call directly and never grows a duplicate key in a subtree.

For Balanced, an update leaves the node list and the tree shape untouched, so
no rebuild is performed for it.

## Rebuild by bisection

Given the sorted node list l[0..n-1]:

	build(start, end):
	    if start > end: return nil
	    mid := start + (end-start)/2
	    l[mid].Left  = build(start, mid-1)
	    l[mid].Right = build(mid+1, end)
	    return l[mid]

For n = 7 the list [a b c d e f g] becomes

	      d
	   b     f
	  a c   e g

*/
