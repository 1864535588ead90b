package fft

// ForwardDIT computes the forward DFT of src into dst with an iterative
// radix-2 decimation-in-time loop. The input is loaded in bit-reversed
// order, then log2(n) butterfly stages run over the work buffer.
//
// dst and src may alias; scratch is used as the work buffer in that case.
// Returns false if any slice is too small for n = len(src).
func ForwardDIT[T Complex](dst, src, twiddle, scratch []T, bitrev []int) bool {
	n := len(src)
	if n == 0 {
		return true
	}

	if len(dst) < n || len(twiddle) < n/2 || len(bitrev) < n {
		return false
	}

	work := dst[:n]
	if sameSlice(dst, src) {
		if len(scratch) < n {
			return false
		}

		work = scratch[:n]
	}

	br := bitrev[:n]
	for i := range n {
		work[i] = src[br[i]]
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for k := range half {
				a := work[start+k]
				t := twiddle[k*step] * work[start+k+half]
				work[start+k] = a + t
				work[start+k+half] = a - t
			}
		}
	}

	if !sameSlice(work, dst) {
		copy(dst, work)
	}

	return true
}
