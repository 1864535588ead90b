package fftbench

import (
	"errors"
	"fmt"

	m "github.com/cwbudde/fftbench/internal/math"
)

// Sentinel errors returned by the harness and its transforms.
var (
	// ErrInvalidLength is returned when a transform size is not a positive
	// power of two.
	ErrInvalidLength = errors.New("fftbench: invalid FFT length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("fftbench: nil slice")

	// ErrLengthMismatch is returned when a slice length differs from the
	// size a transform was constructed for.
	ErrLengthMismatch = errors.New("fftbench: slice length mismatch")

	// ErrSizeMismatch is returned when a candidate transform was built for a
	// different size than the run. See SizeMismatchError.
	ErrSizeMismatch = errors.New("fftbench: transform size mismatch")

	// ErrUnknownImplementation is returned by NewImplementation for names
	// that are not registered.
	ErrUnknownImplementation = errors.New("fftbench: unknown implementation")
)

// SizeMismatchError reports a candidate transform whose fixed size differs
// from the run's size. It matches ErrSizeMismatch with errors.Is.
type SizeMismatchError struct {
	Name string
	Want int // run size
	Got  int // size the transform was built for
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("fftbench: %s transform is built for size %d, run size is %d", e.Name, e.Got, e.Want)
}

// Is reports whether target is ErrSizeMismatch.
func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

func checkLength(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d is not positive", ErrInvalidLength, n)
	}

	if !m.IsPowerOf2(n) {
		return fmt.Errorf("%w: %d is not a power of two (next is %d)", ErrInvalidLength, n, m.NextPowerOf2(n))
	}

	return nil
}

func checkSlices(n int, dst, src []complex128) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst=%d src=%d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}

	return nil
}
