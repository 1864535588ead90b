package math

// BitReversalIndices returns the permutation that reorders a length-n
// sequence into the input order of an iterative radix-2 DIT transform.
// It returns nil for n < 1.
func BitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// Log2 returns floor(log2(n)) for n >= 1 and 0 otherwise.
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}
