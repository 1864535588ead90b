package cpu

import "time"

// ReadCycleCounter reads the CPU's cycle counter (TSC on amd64).
// On other platforms it falls back to time.Now() in nanoseconds.
func ReadCycleCounter() int64 {
	return readCycleCounter()
}

// CyclesSince returns the number of cycles elapsed since the given start cycle count.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToNanoseconds converts cycle count to approximate nanoseconds.
// The conversion is calibrated once at package load and is only meant for
// reporting.
func CyclesToNanoseconds(cycles int64) int64 {
	if cyclesPerNanosecond <= 0 {
		return cycles
	}

	return int64(float64(cycles) / cyclesPerNanosecond)
}

// CyclesPerNanosecond reports the calibrated counter rate, or 0 when the
// counter already runs in nanoseconds.
func CyclesPerNanosecond() float64 {
	return cyclesPerNanosecond
}

var cyclesPerNanosecond float64

func init() {
	if hasHardwareCounter {
		calibrateCycleCounter()
	}
}

// calibrateCycleCounter measures the counter over a short busy-wait.
func calibrateCycleCounter() {
	const calibrationDuration = 10 * time.Millisecond

	start := time.Now()
	startCycles := ReadCycleCounter()

	for time.Since(start) < calibrationDuration {
		// Spin
	}

	endCycles := ReadCycleCounter()
	elapsed := time.Since(start)

	cycles := endCycles - startCycles
	nanoseconds := elapsed.Nanoseconds()

	if nanoseconds > 0 && cycles > 0 {
		cyclesPerNanosecond = float64(cycles) / float64(nanoseconds)
	}
}
