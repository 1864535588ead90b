package fftbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorGeneratorShapeAndRange(t *testing.T) {
	t.Parallel()

	gen := NewVectorGenerator(42, -10, 10)

	for _, n := range []int{0, 1, 7, 64, 1000} {
		v := gen.Vector(n)
		assert.Len(t, v, n)

		for _, s := range v {
			assert.GreaterOrEqual(t, real(s), -10.0)
			assert.Less(t, real(s), 10.0)
			assert.GreaterOrEqual(t, imag(s), -10.0)
			assert.Less(t, imag(s), 10.0)
		}
	}
}

func TestVectorGeneratorSeedIsReproducible(t *testing.T) {
	t.Parallel()

	a := NewVectorGenerator(7, -10, 10).Vector(32)
	b := NewVectorGenerator(7, -10, 10).Vector(32)
	c := NewVectorGenerator(8, -10, 10).Vector(32)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestVectorGeneratorEntropySeed(t *testing.T) {
	t.Parallel()

	a := NewVectorGenerator(0, -10, 10)
	b := NewVectorGenerator(0, -10, 10)

	assert.NotZero(t, a.Seed())
	assert.NotZero(t, b.Seed())
	assert.NotEqual(t, a.Seed(), b.Seed())
}

func TestVectorGeneratorNegativeLength(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewVectorGenerator(1, 0, 1).Vector(-3))
}

func TestVectorGeneratorUsesBothComponents(t *testing.T) {
	t.Parallel()

	v := NewVectorGenerator(3, -10, 10).Vector(256)

	var re, im float64
	for _, s := range v {
		re = max(re, real(s))
		im = max(im, imag(s))
	}

	assert.Greater(t, re, 5.0)
	assert.Greater(t, im, 5.0)
}
