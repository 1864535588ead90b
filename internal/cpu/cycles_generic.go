//go:build !amd64

package cpu

import "time"

const hasHardwareCounter = false

// readCycleCounter falls back to time.Now() on platforms without assembly support.
func readCycleCounter() int64 {
	return time.Now().UnixNano()
}
