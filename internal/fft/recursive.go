package fft

// ScratchSizeRecursive returns the arena length RecursiveForward needs for a
// size-n transform. Each recursion level takes n elements for its even and
// odd halves and hands the remainder to the next level, so 2n always fits.
func ScratchSizeRecursive(n int) int {
	if n <= 1 {
		return 0
	}

	return 2 * n
}

// RecursiveForward computes the forward DFT of x in place using radix-2
// decimation in time.
//
// twiddle must hold at least len(x)/2 roots of unity for the top-level size
// (ComputeTwiddleFactors(len(x)) works), scratch at least
// ScratchSizeRecursive(len(x)) elements. len(x) must be a power of two;
// other lengths produce meaningless output. It returns false when the
// buffers are too small.
func RecursiveForward[T Complex](x, twiddle, scratch []T) bool {
	n := len(x)
	if n <= 1 {
		return true
	}

	if len(twiddle) < n/2 || len(scratch) < ScratchSizeRecursive(n) {
		return false
	}

	recursiveDIT(x, twiddle, scratch, 1)

	return true
}

// recursiveDIT transforms x in place. stride maps the sub-problem's twiddle
// index onto the top-level table: W_m^k = W_n^(k*stride) with m = n/stride.
func recursiveDIT[T Complex](x, twiddle, scratch []T, stride int) {
	n := len(x)
	if n <= 1 {
		return
	}

	half := n >> 1
	even := scratch[:half]
	odd := scratch[half:n]

	for i := range half {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	// Both halves reuse the same tail; even is finished before odd starts.
	rest := scratch[n:]
	recursiveDIT(even, twiddle, rest, stride<<1)
	recursiveDIT(odd, twiddle, rest, stride<<1)

	for k := range half {
		t := twiddle[k*stride] * odd[k]
		x[k] = even[k] + t
		x[k+half] = even[k] - t
	}
}
