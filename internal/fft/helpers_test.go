package fft

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"
)

const (
	testTol64  = 1e-3
	testTol128 = 1e-9
)

func randomComplex128(n int, seed uint64) []complex128 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func toComplex64(src []complex128) []complex64 {
	out := make([]complex64, len(src))
	for i, v := range src {
		out[i] = complex64(v)
	}

	return out
}

func assertComplex128SliceClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("index %d: got %v, want %v (diff=%g)", i, got[i], want[i], cmplx.Abs(got[i]-want[i]))
		}
	}
}
