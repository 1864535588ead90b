package fftbench

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/fftbench/internal/generated"
	"github.com/cwbudde/fftbench/internal/reference"
)

// GeneratedName is the name reported for generated candidate transforms.
const GeneratedName = "Generated FFT"

// Generated adapts an opaque fixed-size transform function to Transform.
// The size is fixed at construction; Forward rejects any other length before
// fn is called.
type Generated struct {
	name string
	n    int
	fn   func(dst, src []complex128)
}

// NewGenerated wraps fn, which transforms exactly n samples.
func NewGenerated(name string, n int, fn func(dst, src []complex128)) (*Generated, error) {
	if fn == nil {
		return nil, errors.New("fftbench: nil transform function")
	}

	if err := checkLength(n); err != nil {
		return nil, err
	}

	return &Generated{name: name, n: n, fn: fn}, nil
}

// Name implements Transform.
func (g *Generated) Name() string { return g.name }

// Len returns the size fn was built for.
func (g *Generated) Len() int { return g.n }

// Forward implements Transform.
func (g *Generated) Forward(dst, src []complex128) error {
	if err := checkSlices(g.n, dst, src); err != nil {
		return err
	}

	g.fn(dst, src)

	return nil
}

// Constructor builds a Transform for size n.
type Constructor func(n int) (Transform, error)

var implementations = map[string]Constructor{
	"generated": newGeneratedKernel,
	"dit":       func(n int) (Transform, error) { return NewPlan(n) },
	"dft":       newNaiveDFT,
	"gonum":     newGonum,
	"godsp":     newGoDSP,
}

// NewImplementation builds the registered candidate transform name for size n.
func NewImplementation(name string, n int) (Transform, error) {
	ctor, ok := implementations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownImplementation, name, Implementations())
	}

	return ctor(n)
}

// Implementations lists the registered candidate names in sorted order.
func Implementations() []string {
	names := make([]string, 0, len(implementations))
	for name := range implementations {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func newGeneratedKernel(n int) (Transform, error) {
	kernel, ok := generated.Lookup(n)
	if !ok {
		return nil, fmt.Errorf("%w: no generated kernel for size %d (available %v)", ErrSizeMismatch, n, generated.Sizes())
	}

	return NewGenerated(GeneratedName, n, kernel)
}

func newNaiveDFT(n int) (Transform, error) {
	return NewGenerated("Naive DFT", n, reference.NaiveDFTInto)
}

// gonumTransform runs gonum's FFTPACK-derived complex FFT.
type gonumTransform struct {
	n   int
	fft *fourier.CmplxFFT
}

func newGonum(n int) (Transform, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}

	return &gonumTransform{n: n, fft: fourier.NewCmplxFFT(n)}, nil
}

func (g *gonumTransform) Name() string { return "Gonum FFT" }

func (g *gonumTransform) Len() int { return g.n }

func (g *gonumTransform) Forward(dst, src []complex128) error {
	if err := checkSlices(g.n, dst, src); err != nil {
		return err
	}

	g.fft.Coefficients(dst, src)

	return nil
}

// goDSPTransform runs go-dsp's radix-2 FFT, which returns a new slice on
// every call; the copy into dst is part of the measured cost.
type goDSPTransform struct {
	n int
}

var goDSPSerial sync.Once

func newGoDSP(n int) (Transform, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}

	// go-dsp fans radix-2 stages out to GOMAXPROCS workers by default.
	goDSPSerial.Do(func() { dspfft.SetWorkerPoolSize(1) })

	return &goDSPTransform{n: n}, nil
}

func (g *goDSPTransform) Name() string { return "go-dsp FFT" }

func (g *goDSPTransform) Len() int { return g.n }

func (g *goDSPTransform) Forward(dst, src []complex128) error {
	if err := checkSlices(g.n, dst, src); err != nil {
		return err
	}

	copy(dst, dspfft.FFT(src))

	return nil
}
