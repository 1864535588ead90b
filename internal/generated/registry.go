package generated

import "slices"

// Kernel transforms len(src) samples into dst. Both slices must have exactly
// the kernel's size; shorter slices panic on the array conversion.
type Kernel func(dst, src []complex128)

var kernels = map[int]Kernel{
	8:  func(dst, src []complex128) { Forward8((*[8]complex128)(src), (*[8]complex128)(dst)) },
	16: func(dst, src []complex128) { Forward16((*[16]complex128)(src), (*[16]complex128)(dst)) },
	32: func(dst, src []complex128) { Forward32((*[32]complex128)(src), (*[32]complex128)(dst)) },
	64: func(dst, src []complex128) { Forward64((*[64]complex128)(src), (*[64]complex128)(dst)) },
}

// Lookup returns the generated kernel for size n.
func Lookup(n int) (Kernel, bool) {
	k, ok := kernels[n]
	return k, ok
}

// Sizes returns the sizes with a generated kernel in ascending order.
func Sizes() []int {
	sizes := make([]int, 0, len(kernels))
	for n := range kernels {
		sizes = append(sizes, n)
	}

	slices.Sort(sizes)

	return sizes
}
