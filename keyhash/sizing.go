package keyhash

// CheckModulus validates a bucket count for use by the hashers in this
// package.
func CheckModulus(modulus uint64) error {
	if modulus == 0 || modulus > MaxModulus {
		return ErrBadModulus
	}
	return nil
}
