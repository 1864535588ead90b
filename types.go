package fftbench

// Transform is a forward DFT of one fixed size.
//
// Forward reads len(src) == Len() samples and writes the same number of
// coefficients to dst. It must not modify src.
type Transform interface {
	Name() string
	Len() int
	Forward(dst, src []complex128) error
}
