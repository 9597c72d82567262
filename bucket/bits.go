package bucket

import "math/bits"

// MaxBalancedDepth returns ceil(log2(n+1)), the depth of a tree built by
// bisection from n sorted keys.
//
// For n >= 0 that is exactly the bit length of n.
func MaxBalancedDepth(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len64(uint64(n))
}
