package fftbench

import (
	"github.com/cwbudde/fftbench/internal/fft"
	m "github.com/cwbudde/fftbench/internal/math"
)

// Plan is a precomputed iterative radix-2 FFT for one size: twiddles,
// bit-reversal permutation and scratch are allocated once at creation.
type Plan struct {
	n       int
	twiddle []complex128
	bitrev  []int
	scratch []complex128
}

// NewPlan creates a plan for size n. n must be a positive power of two.
func NewPlan(n int) (*Plan, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}

	return &Plan{
		n:       n,
		twiddle: fft.ComputeTwiddleFactors[complex128](n),
		bitrev:  m.BitReversalIndices(n),
		scratch: make([]complex128, n),
	}, nil
}

// Name implements Transform.
func (p *Plan) Name() string { return "DIT FFT" }

// Len returns the transform size.
func (p *Plan) Len() int { return p.n }

// Forward computes the DFT of src into dst. dst and src may be the same slice.
func (p *Plan) Forward(dst, src []complex128) error {
	if err := checkSlices(p.n, dst, src); err != nil {
		return err
	}

	if !fft.ForwardDIT(dst, src, p.twiddle, p.scratch, p.bitrev) {
		return ErrLengthMismatch
	}

	return nil
}
