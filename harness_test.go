package fftbench

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/fftbench/internal/fft"
)

// fixedInput8 is a deterministic, non-symmetric test vector.
var fixedInput8 = []complex128{
	1 + 0i, 2 - 1i, 0 + 3i, -4 + 0.5i,
	0.25 - 2i, 7 + 7i, -3 - 3i, 0 + 0i,
}

// recursiveStub runs the same recursive algorithm as the reference but
// through the opaque Generated adapter.
func recursiveStub(t *testing.T, n int) *Generated {
	t.Helper()

	twiddle := fft.ComputeTwiddleFactors[complex128](n)
	scratch := make([]complex128, fft.ScratchSizeRecursive(n))

	g, err := NewGenerated("Stub FFT", n, func(dst, src []complex128) {
		copy(dst, src)
		fft.RecursiveForward(dst, twiddle, scratch)
	})
	require.NoError(t, err)

	return g
}

func TestRunInputEndToEndWithStub(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(8)
	cfg.Loops = 50

	h, err := New(cfg, recursiveStub(t, 8))
	require.NoError(t, err)

	input := append([]complex128(nil), fixedInput8...)

	report, err := h.RunInput(input)
	require.NoError(t, err)

	assert.True(t, report.Passed())
	assert.Empty(t, report.Validation.Mismatches)
	assert.Equal(t, fixedInput8, input, "input must not be modified")

	assert.Equal(t, ReferenceName, report.Reference.Name)
	assert.Equal(t, "Stub FFT", report.Candidate.Name)
	assert.Equal(t, 50, report.Reference.Loops)
	assert.Equal(t, 50, report.Candidate.Loops)
	assert.Equal(t, 8, report.Size)
}

func TestRunWithGeneratedKernel(t *testing.T) {
	t.Parallel()

	impl, err := NewImplementation("generated", 64)
	require.NoError(t, err)

	cfg := DefaultConfig(64)
	cfg.Loops = 10
	cfg.Seed = 1234

	h, err := New(cfg, impl)
	require.NoError(t, err)

	report, err := h.Run()
	require.NoError(t, err)

	assert.True(t, report.Passed(), "max error %g", report.Validation.MaxError)
	assert.Equal(t, uint64(1234), report.Seed)
}

func TestNewSizeMismatch(t *testing.T) {
	t.Parallel()

	impl, err := NewImplementation("generated", 32)
	require.NoError(t, err)

	_, err = New(DefaultConfig(64), impl)
	require.ErrorIs(t, err, ErrSizeMismatch)

	var mismatch *SizeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 64, mismatch.Want)
	assert.Equal(t, 32, mismatch.Got)
	assert.Equal(t, GeneratedName, mismatch.Name)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	impl := recursiveStub(t, 8)

	_, err := New(DefaultConfig(0), impl)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = New(DefaultConfig(8), nil)
	require.Error(t, err)
}

func TestRunInputReportsCandidateMismatch(t *testing.T) {
	t.Parallel()

	ref, err := NewReference(8)
	require.NoError(t, err)

	broken, err := NewGenerated("Broken FFT", 8, func(dst, src []complex128) {
		_ = ref.Forward(dst, src)
		dst[5] += 1
	})
	require.NoError(t, err)

	cfg := DefaultConfig(8)
	cfg.Loops = 3

	h, err := New(cfg, broken)
	require.NoError(t, err)

	report, err := h.RunInput(fixedInput8)
	require.NoError(t, err, "a numerical mismatch is a result, not an error")

	require.False(t, report.Passed())
	require.Len(t, report.Validation.Mismatches, 1)
	assert.Equal(t, 5, report.Validation.Mismatches[0].Index)

	var buf bytes.Buffer
	_, err = report.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Failed at sample 5: error 1 exceeds tolerance 1e-06\n")
	assert.NotContains(t, out, "matched")
}

func TestRunInputPropagatesTransformErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("kernel fault")

	h, err := New(DefaultConfig(4), &failingTransform{n: 4, err: boom})
	require.NoError(t, err)

	_, err = h.RunInput(make([]complex128, 4))
	require.ErrorIs(t, err, boom)
}

func TestRunInputRejectsWrongLength(t *testing.T) {
	t.Parallel()

	h, err := New(DefaultConfig(8), recursiveStub(t, 8))
	require.NoError(t, err)

	_, err = h.RunInput(make([]complex128, 4))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestReportWriteTo(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(8)
	cfg.Loops = 5

	h, err := New(cfg, recursiveStub(t, 8))
	require.NoError(t, err)

	report, err := h.RunInput(fixedInput8)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := report.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Size of the FFT to test: 8", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Reference FFT took "), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], " samples per second"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Stub FFT took "), lines[2])
	assert.Equal(t, "Stub FFT matched Reference FFT output", lines[3])
}

func TestRunLogsTimingsAndValidation(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	cfg := DefaultConfig(16)
	cfg.Loops = 2

	h, err := New(cfg, recursiveStub(t, 16), WithLogger(NewTextLogger(&logs, slog.LevelDebug)))
	require.NoError(t, err)

	_, err = h.Run()
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "starting run")
	assert.Contains(t, out, "timed loop completed")
	assert.Contains(t, out, "transform=\"Reference FFT\"")
	assert.Contains(t, out, "outputs match")
	assert.Contains(t, out, "size=16")
}

func TestWithGenerator(t *testing.T) {
	t.Parallel()

	gen := NewVectorGenerator(77, -1, 1)

	h, err := New(DefaultConfig(8), recursiveStub(t, 8), WithGenerator(gen))
	require.NoError(t, err)

	report, err := h.Run()
	require.NoError(t, err)
	assert.Equal(t, uint64(77), report.Seed)
}

type failingTransform struct {
	n   int
	err error
}

func (f *failingTransform) Name() string { return "Failing FFT" }

func (f *failingTransform) Len() int { return f.n }

func (f *failingTransform) Forward(dst, src []complex128) error { return f.err }
