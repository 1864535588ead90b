package fftbench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cwbudde/fftbench/internal/cpu"
)

// Harness benchmarks one candidate transform against the reference FFT.
type Harness struct {
	cfg    Config
	ref    *Reference
	impl   Transform
	gen    *VectorGenerator
	logger *Logger
}

// New validates cfg and binds impl to it. impl must have been built for
// cfg.Size; otherwise a *SizeMismatchError is returned.
func New(cfg Config, impl Transform, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if impl == nil {
		return nil, errors.New("fftbench: nil candidate transform")
	}

	if impl.Len() != cfg.Size {
		return nil, &SizeMismatchError{Name: impl.Name(), Want: cfg.Size, Got: impl.Len()}
	}

	ref, err := NewReference(cfg.Size)
	if err != nil {
		return nil, err
	}

	h := &Harness{
		cfg:    cfg,
		ref:    ref,
		impl:   impl,
		logger: NoopLogger(),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.gen == nil {
		h.gen = NewVectorGenerator(cfg.Seed, cfg.Low, cfg.High)
	}

	return h, nil
}

// Config returns the configuration the harness was created with.
func (h *Harness) Config() Config { return h.cfg }

// Run draws one random test vector and benchmarks both transforms on it.
func (h *Harness) Run() (*Report, error) {
	return h.RunInput(h.gen.Vector(h.cfg.Size))
}

// RunInput benchmarks both transforms on input, which is not modified.
//
// The reference loop re-transforms a private copy in place, so later
// iterations see already transformed data. The candidate loop reads the
// input on every call and overwrites one output buffer. Validation uses
// a fresh output pair computed from the untouched input.
func (h *Harness) RunInput(input []complex128) (*Report, error) {
	n := h.cfg.Size
	if len(input) != n {
		return nil, fmt.Errorf("%w: input has %d samples, want %d", ErrLengthMismatch, len(input), n)
	}

	log := h.logger.WithSize(n)
	features := cpu.DetectFeatures()

	log.Debug("starting run",
		"candidate", h.impl.Name(),
		"loops", h.cfg.Loops,
		"seed", h.gen.Seed(),
		"cpu", features.String(),
	)

	report := &Report{
		Size:     n,
		Seed:     h.gen.Seed(),
		Features: features,
	}

	work := slices.Clone(input)

	refTiming, err := Measure(ReferenceName, n, h.cfg.Loops, func() error {
		return h.ref.Transform(work)
	})
	log.LogTiming(refTiming, err)

	if err != nil {
		return nil, fmt.Errorf("reference loop: %w", err)
	}

	out := make([]complex128, n)

	candTiming, err := Measure(h.impl.Name(), n, h.cfg.Loops, func() error {
		return h.impl.Forward(out, input)
	})
	log.LogTiming(candTiming, err)

	if err != nil {
		return nil, fmt.Errorf("%s loop: %w", h.impl.Name(), err)
	}

	want := make([]complex128, n)
	if err := h.ref.Forward(want, input); err != nil {
		return nil, fmt.Errorf("reference validation pass: %w", err)
	}

	got := make([]complex128, n)
	if err := h.impl.Forward(got, input); err != nil {
		return nil, fmt.Errorf("%s validation pass: %w", h.impl.Name(), err)
	}

	validation, err := Validate(got, want, h.cfg.Tolerance)
	if err != nil {
		return nil, err
	}

	log.LogValidation(validation)

	report.Reference = refTiming
	report.Candidate = candTiming
	report.Validation = validation

	return report, nil
}

// Report holds the results of one run.
type Report struct {
	Size       int
	Seed       uint64
	Features   cpu.Features
	Reference  Timing
	Candidate  Timing
	Validation *Validation
}

// Passed reports whether the candidate matched the reference.
func (r *Report) Passed() bool {
	return r.Validation != nil && r.Validation.Passed()
}

// WriteTo writes the human-readable report: the size, one timing line per
// transform, one line per mismatched sample and a final line if every sample
// matched.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Size of the FFT to test: %d\n", r.Size)
	writeTiming(&buf, r.Reference)
	writeTiming(&buf, r.Candidate)

	if r.Validation != nil {
		for _, m := range r.Validation.Mismatches {
			fmt.Fprintf(&buf, "Failed at sample %d: error %.6g exceeds tolerance %g\n", m.Index, m.Error, r.Validation.Tolerance)
		}

		if r.Validation.Passed() {
			fmt.Fprintf(&buf, "%s matched %s output\n", r.Candidate.Name, r.Reference.Name)
		}
	}

	return buf.WriteTo(w)
}

func writeTiming(buf *bytes.Buffer, t Timing) {
	fmt.Fprintf(buf, "%s took %d ns for a speed of %.6g samples per second\n",
		t.Name, t.PerCall().Nanoseconds(), t.Throughput())
}
