package keyhash

/*

# Deterministic bucket hashing for string keys

This package maps arbitrary string keys into a small, fixed range of bucket
indices. It follows the same "functional primitives" style as the other
packages in this module:

- small, composable functions
- fixed, compile time parameters for the default scheme
- no hidden state, so the same key always lands in the same bucket, in every
  process, on every run

## The polynomial (Horner) hash

The default hash is a multiplicative-congruential rolling hash over the
code points of the key:

	h := 0
	for each code point c in key (left to right):
	    h := (P*h + c) mod M

with P = 31 and M = 127. M bounds the number of buckets. The value 127 is the
size of the 7 bit character set minus one; it bounds the output range only and
says nothing about the alphabet of the keys.

Both P and M must be identical across implementations for bucket placement to
be bit compatible. Known vectors for the default parameters:

	""      -> 0
	"hi"    -> 27
	"ih"    -> 57
	"hello" -> 87
	"two"   -> 87
	"Hola"  -> 56

No collision resistance is claimed. Collisions are expected, and are resolved
by the per bucket index (see package bucket).

## Code points, not bytes

Keys are iterated with `range`, so a multi-byte UTF-8 sequence contributes a
single term. Invalid UTF-8 bytes decode as U+FFFD, per the Go decoding rule.

## XXHash

XXHash is provided for callers who prefer a better distributed placement and
do not need compatibility with the polynomial vectors. It is still
deterministic; it is not the default.

*/
