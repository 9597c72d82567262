package keyhash

// Sum returns the default polynomial hash of key, in [0, Modulus).
func Sum(key string) uint32 {
	return horner(key, SmallPrime, Modulus)
}

// Polynomial is a Horner rolling hash with a configurable multiplier and
// modulus.
type Polynomial struct {
	Prime   uint64
	Modulus uint64
}

// Default returns the P=31, M=127 hasher.
func Default() Polynomial {
	return Polynomial{Prime: SmallPrime, Modulus: Modulus}
}

// NewPolynomial returns a Polynomial hasher after checking its parameters.
func NewPolynomial(prime uint64, modulus uint64) (Polynomial, error) {
	if err := CheckModulus(modulus); err != nil {
		return Polynomial{}, err
	}
	if prime == 0 {
		return Polynomial{}, ErrBadPrime
	}
	return Polynomial{Prime: prime, Modulus: modulus}, nil
}

// Check reports whether p was built with usable parameters. Struct literals
// bypass NewPolynomial, so consumers should call it before trusting Buckets.
func (p Polynomial) Check() error {
	if err := CheckModulus(p.Modulus); err != nil {
		return err
	}
	if p.Prime == 0 {
		return ErrBadPrime
	}
	return nil
}

// Bucket returns the slot for key, in [0, Modulus). A zero Modulus places
// every key in slot 0.
func (p Polynomial) Bucket(key string) uint32 {
	return horner(key, p.Prime, p.Modulus)
}

// Buckets returns the slot count, Modulus.
func (p Polynomial) Buckets() uint32 {
	return uint32(p.Modulus)
}

// horner folds the code points of key into [0, modulus).
//
// The running value is reduced every step and the prime is reduced once up
// front, so each product is < 2^62 and the sum cannot overflow a uint64.
func horner(key string, prime uint64, modulus uint64) uint32 {
	if modulus == 0 {
		return 0
	}
	prime %= modulus
	var h uint64
	for _, c := range key {
		h = (prime*h + uint64(c)) % modulus
	}
	return uint32(h)
}
