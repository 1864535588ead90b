package fftbench

import (
	"time"

	"github.com/cwbudde/fftbench/internal/cpu"
)

// Timing is the wall-clock measurement of one timed loop.
type Timing struct {
	Name    string
	Size    int
	Loops   int
	Elapsed time.Duration
	Cycles  int64
}

// PerCall returns the average duration of one call, truncated to whole
// nanoseconds.
func (t Timing) PerCall() time.Duration {
	if t.Loops <= 0 {
		return 0
	}

	return t.Elapsed / time.Duration(t.Loops)
}

// PerCallNanos returns the average duration of one call in nanoseconds
// without truncation.
func (t Timing) PerCallNanos() float64 {
	if t.Loops <= 0 {
		return 0
	}

	return float64(t.Elapsed.Nanoseconds()) / float64(t.Loops)
}

// Throughput returns 1e9 * Size / PerCallNanos, the number of samples
// transformed per second. It is 0 when nothing was measured.
func (t Timing) Throughput() float64 {
	ns := t.PerCallNanos()
	if ns <= 0 {
		return 0
	}

	return 1e9 * float64(t.Size) / ns
}

// CyclesPerCall returns the average counter ticks per call.
func (t Timing) CyclesPerCall() float64 {
	if t.Loops <= 0 {
		return 0
	}

	return float64(t.Cycles) / float64(t.Loops)
}

// Measure calls fn loops times back to back and records the elapsed wall
// time and cycle count. It stops at the first error and returns it together
// with the partial timing. size is only recorded for throughput.
func Measure(name string, size, loops int, fn func() error) (Timing, error) {
	timing := Timing{Name: name, Size: size}

	start := time.Now()
	startCycles := cpu.ReadCycleCounter()

	var err error

	completed := 0
	for ; completed < loops; completed++ {
		if err = fn(); err != nil {
			break
		}
	}

	timing.Cycles = cpu.CyclesSince(startCycles)
	timing.Elapsed = time.Since(start)
	timing.Loops = completed

	return timing, err
}
