// Package fft holds the transform kernels used by the benchmark harness:
// the recursive reference FFT and an iterative radix-2 plan kernel.
package fft

import (
	"math"
)

// Complex is the constraint for complex sample types supported by the kernels.
type Complex interface {
	complex64 | complex128
}

// ComputeTwiddleFactors returns the roots of unity W_n^k = exp(-2*pi*i*k/n)
// for k = 0..n-1.
func ComputeTwiddleFactors[T Complex](n int) []T {
	if n <= 0 {
		return nil
	}

	twiddle := make([]T, n)
	for k := range n {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// complexFromFloat64 creates a complex number of type T from float64 components.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}

func sameSlice[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	return &a[0] == &b[0]
}
