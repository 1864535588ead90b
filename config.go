package fftbench

import (
	"errors"
	"fmt"
	"math"
)

// DefaultLoops is the number of calls averaged per timed loop.
const DefaultLoops = 1000

// Default sample interval for generated test vectors.
const (
	DefaultLow  = -10.0
	DefaultHigh = 10.0
)

// Config describes one harness run.
type Config struct {
	// Size is the transform length N. Must be a positive power of two.
	Size int
	// Loops is the number of back-to-back calls per timed loop.
	Loops int
	// Tolerance is the largest accepted squared-magnitude error per sample.
	Tolerance float64
	// Seed seeds the test vector generator. 0 draws a seed from crypto/rand.
	Seed uint64
	// Low and High bound the uniform distribution of each component.
	Low, High float64
}

// DefaultConfig returns the defaults for size n.
func DefaultConfig(n int) Config {
	return Config{
		Size:      n,
		Loops:     DefaultLoops,
		Tolerance: DefaultTolerance,
		Low:       DefaultLow,
		High:      DefaultHigh,
	}
}

// Validate checks that the configuration describes a runnable benchmark.
func (c Config) Validate() error {
	if err := checkLength(c.Size); err != nil {
		return err
	}

	if c.Loops < 1 {
		return fmt.Errorf("fftbench: loops must be positive, got %d", c.Loops)
	}

	if !(c.Tolerance >= 0) || math.IsInf(c.Tolerance, 1) {
		return fmt.Errorf("fftbench: tolerance must be finite and non-negative, got %v", c.Tolerance)
	}

	if !(c.Low < c.High) || math.IsInf(c.Low, 0) || math.IsInf(c.High, 0) {
		return errors.New("fftbench: sample interval must satisfy low < high")
	}

	return nil
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the structured logger. A nil logger disables logging.
func WithLogger(l *Logger) Option {
	return func(h *Harness) {
		if l == nil {
			l = NoopLogger()
		}

		h.logger = l
	}
}

// WithGenerator replaces the vector generator built from Config.Seed.
func WithGenerator(g *VectorGenerator) Option {
	return func(h *Harness) {
		if g != nil {
			h.gen = g
		}
	}
}
