package fftbench

import (
	"fmt"

	"github.com/cwbudde/fftbench/internal/fft"
)

// ReferenceName is the name reported for the reference transform.
const ReferenceName = "Reference FFT"

// Reference is the recursive radix-2 decimation-in-time FFT used as the
// correctness oracle. It owns its twiddle table and recursion arena, so a
// Reference must not be shared between goroutines; separate instances share
// nothing.
type Reference struct {
	n       int
	twiddle []complex128
	scratch []complex128
}

// NewReference creates a reference transform for size n. n must be a
// positive power of two.
func NewReference(n int) (*Reference, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}

	return &Reference{
		n:       n,
		twiddle: fft.ComputeTwiddleFactors[complex128](n),
		scratch: make([]complex128, fft.ScratchSizeRecursive(n)),
	}, nil
}

// Name implements Transform.
func (r *Reference) Name() string { return ReferenceName }

// Len returns the transform size.
func (r *Reference) Len() int { return r.n }

// Transform replaces x with its DFT.
func (r *Reference) Transform(x []complex128) error {
	if x == nil {
		return ErrNilSlice
	}

	if len(x) != r.n {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(x), r.n)
	}

	fft.RecursiveForward(x, r.twiddle, r.scratch)

	return nil
}

// Forward copies src into dst and transforms dst. src is left untouched.
func (r *Reference) Forward(dst, src []complex128) error {
	if err := checkSlices(r.n, dst, src); err != nil {
		return err
	}

	copy(dst, src)
	fft.RecursiveForward(dst, r.twiddle, r.scratch)

	return nil
}
