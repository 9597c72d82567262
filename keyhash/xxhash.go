package keyhash

import (
	"github.com/OneOfOne/xxhash"
)

// XXHash reduces the 64 bit xxhash digest of the key bytes modulo Modulus.
type XXHash struct {
	Modulus uint64
}

// NewXXHash returns an XXHash hasher after checking modulus.
func NewXXHash(modulus uint64) (XXHash, error) {
	if err := CheckModulus(modulus); err != nil {
		return XXHash{}, err
	}
	return XXHash{Modulus: modulus}, nil
}

// Check reports whether x has a usable Modulus.
func (x XXHash) Check() error {
	return CheckModulus(x.Modulus)
}

// Bucket returns the slot for key, in [0, Modulus). A zero Modulus places
// every key in slot 0.
func (x XXHash) Bucket(key string) uint32 {
	if x.Modulus == 0 {
		return 0
	}
	h := xxhash.New64()
	_, _ = h.Write([]byte(key))
	return uint32(h.Sum64() % x.Modulus)
}

// Buckets returns the slot count, Modulus.
func (x XXHash) Buckets() uint32 {
	return uint32(x.Modulus)
}
