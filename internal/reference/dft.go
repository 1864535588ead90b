// Package reference provides a direct O(n^2) DFT used as an independent
// oracle for the fast kernels.
package reference

import "math"

// NaiveDFT computes the forward DFT of src by summing n terms per bin.
// Twiddles are evaluated in float64 regardless of the sample type.
func NaiveDFT(src []complex128) []complex128 {
	n := len(src)
	dst := make([]complex128, n)
	NaiveDFTInto(dst, src)

	return dst
}

// NaiveDFTInto writes the forward DFT of src into dst. dst must not alias src
// and must have len(dst) >= len(src).
func NaiveDFTInto(dst, src []complex128) {
	n := len(src)

	for k := range n {
		var sum complex128

		for t := range n {
			// Reduce k*t mod n first to keep the angle small.
			idx := (k * t) % n
			angle := -2.0 * math.Pi * float64(idx) / float64(n)
			sum += src[t] * complex(math.Cos(angle), math.Sin(angle))
		}

		dst[k] = sum
	}
}
