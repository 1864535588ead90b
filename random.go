package fftbench

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// VectorGenerator draws test vectors from a locally owned PCG source.
type VectorGenerator struct {
	rng  *rand.Rand
	seed uint64
	lo   float64
	hi   float64
}

// NewVectorGenerator creates a generator whose real and imaginary parts are
// uniform over [lo, hi). A zero seed is replaced by one read from
// crypto/rand; Seed reports the value actually used.
func NewVectorGenerator(seed uint64, lo, hi float64) *VectorGenerator {
	if seed == 0 {
		seed = entropySeed()
	}

	return &VectorGenerator{
		rng:  rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)),
		seed: seed,
		lo:   lo,
		hi:   hi,
	}
}

// Seed returns the seed the generator was created with.
func (g *VectorGenerator) Seed() uint64 { return g.seed }

// Vector returns n fresh samples.
func (g *VectorGenerator) Vector(n int) []complex128 {
	if n < 0 {
		n = 0
	}

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(g.uniform(), g.uniform())
	}

	return out
}

func (g *VectorGenerator) uniform() float64 {
	return g.lo + (g.hi-g.lo)*g.rng.Float64()
}

func entropySeed() uint64 {
	var b [8]byte

	for {
		// crypto/rand.Read never returns an error on supported platforms.
		_, _ = crand.Read(b[:])
		if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
			return seed
		}
	}
}
