package fftbench

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureCallsExactlyLoops(t *testing.T) {
	t.Parallel()

	calls := 0
	timing, err := Measure("count", 16, 250, func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 250, calls)
	assert.Equal(t, 250, timing.Loops)
	assert.Equal(t, 16, timing.Size)
	assert.Equal(t, "count", timing.Name)
	assert.GreaterOrEqual(t, timing.Elapsed, time.Duration(0))
}

func TestMeasureStopsAtFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	timing, err := Measure("fail", 8, 10, func() error {
		calls++
		if calls == 4 {
			return boom
		}

		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 3, timing.Loops)
}

func TestMeasureThroughputPositiveAndFinite(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 64, 4096} {
		ref, err := NewReference(n)
		require.NoError(t, err)

		x := NewVectorGenerator(1, -10, 10).Vector(n)

		timing, err := Measure(ReferenceName, n, 20, func() error {
			time.Sleep(time.Microsecond)
			return ref.Transform(x)
		})
		require.NoError(t, err)

		tp := timing.Throughput()
		assert.Positive(t, tp, "n=%d", n)
		assert.False(t, math.IsInf(tp, 0) || math.IsNaN(tp), "n=%d throughput %v", n, tp)
	}
}

func TestTimingDerivedValues(t *testing.T) {
	t.Parallel()

	timing := Timing{Size: 64, Loops: 1000, Elapsed: 2 * time.Millisecond, Cycles: 6_000_000}

	assert.Equal(t, 2*time.Microsecond, timing.PerCall())
	assert.InDelta(t, 2000.0, timing.PerCallNanos(), 1e-9)
	assert.InDelta(t, 32e6, timing.Throughput(), 1e-3)
	assert.InDelta(t, 6000.0, timing.CyclesPerCall(), 1e-9)
}

func TestTimingSubNanosecondAverage(t *testing.T) {
	t.Parallel()

	timing := Timing{Size: 8, Loops: 1000, Elapsed: 500 * time.Nanosecond}

	assert.Equal(t, time.Duration(0), timing.PerCall())
	assert.InDelta(t, 0.5, timing.PerCallNanos(), 1e-12)
	assert.InDelta(t, 16e9, timing.Throughput(), 1)
}

func TestTimingZeroValue(t *testing.T) {
	t.Parallel()

	var timing Timing

	assert.Zero(t, timing.PerCall())
	assert.Zero(t, timing.PerCallNanos())
	assert.Zero(t, timing.Throughput())
	assert.Zero(t, timing.CyclesPerCall())
}
