// Package cpu reports host CPU capabilities and exposes a cycle counter for
// the benchmark driver.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU as reported alongside benchmark results.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the CPU features of the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasFMA:       cpu.X86.HasFMA,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String lists the detected extensions, e.g. "amd64+sse2+avx+avx2+fma".
func (f Features) String() string {
	parts := []string{f.Architecture}

	flags := []struct {
		name string
		on   bool
	}{
		{"sse2", f.HasSSE2},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"fma", f.HasFMA},
		{"neon", f.HasNEON},
	}

	for _, flag := range flags {
		if flag.on {
			parts = append(parts, flag.name)
		}
	}

	return strings.Join(parts, "+")
}
