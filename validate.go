package fftbench

import "fmt"

// DefaultTolerance is the largest squared-magnitude difference between two
// samples that still counts as equal.
const DefaultTolerance = 1e-6

// Mismatch is one sample whose error exceeded the tolerance.
type Mismatch struct {
	Index int
	Got   complex128
	Want  complex128
	Error float64
}

// Validation is the outcome of comparing a candidate output with the
// reference output.
type Validation struct {
	Size       int
	Tolerance  float64
	MaxError   float64
	MaxIndex   int
	Mismatches []Mismatch
}

// Passed reports whether every sample was within tolerance.
func (v *Validation) Passed() bool {
	return len(v.Mismatches) == 0
}

// Validate compares got against want sample by sample using the squared
// magnitude of the difference. A NaN error counts as a mismatch.
func Validate(got, want []complex128, tol float64) (*Validation, error) {
	if len(got) != len(want) {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrLengthMismatch, len(got), len(want))
	}

	v := &Validation{Size: len(want), Tolerance: tol}

	for i := range want {
		e := squaredError(got[i], want[i])

		if e > v.MaxError {
			v.MaxError = e
			v.MaxIndex = i
		}

		if !(e <= tol) {
			v.Mismatches = append(v.Mismatches, Mismatch{Index: i, Got: got[i], Want: want[i], Error: e})
		}
	}

	return v, nil
}

func squaredError(a, b complex128) float64 {
	d := a - b
	return real(d)*real(d) + imag(d)*imag(d)
}
