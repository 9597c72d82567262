package keyhash

import "errors"

const (
	// SmallPrime is the multiplier of the default polynomial hash.
	SmallPrime = 31

	// Modulus is the default bucket count, and so bounds every default hash.
	Modulus = 127

	// MaxModulus bounds the modulus of any hasher in this package so that
	// bucket indices always fit a uint32 and Horner steps never overflow.
	MaxModulus = 1 << 31
)

var (
	ErrBadModulus = errors.New("keyhash: modulus must be in the range [1, 2^31]")
	ErrBadPrime   = errors.New("keyhash: prime must be non zero")
)

// Hasher places string keys into one of a fixed number of buckets.
//
// Implementations must be pure: Bucket(k) is the same value for the lifetime of
// the Hasher and is always < Buckets().
type Hasher interface {
	Bucket(key string) uint32
	Buckets() uint32
}

// Checker is implemented by hashers whose parameters can be invalid when
// built as struct literals.
type Checker interface {
	Check() error
}

var (
	_ Checker = Polynomial{}
	_ Checker = XXHash{}
)
