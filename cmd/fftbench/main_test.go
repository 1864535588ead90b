package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRunWithoutSizePrintsUsage(t *testing.T) {
	code, stdout, stderr := runCLI(t)

	assert.Equal(t, 0, code)
	assert.Equal(t, usageLine+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunRejectsNonNumericSize(t *testing.T) {
	code, stdout, stderr := runCLI(t, "sixty-four")

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `invalid size "sixty-four"`)
}

func TestRunRejectsInvalidSizes(t *testing.T) {
	for _, arg := range []string{"0", "-8", "12"} {
		code, stdout, stderr := runCLI(t, "--", arg)

		assert.Equal(t, 2, code, arg)
		assert.Empty(t, stdout, arg)
		assert.Contains(t, stderr, "invalid FFT length", arg)
	}
}

func TestRunGeneratedCandidate(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-loops", "5", "-seed", "42", "64")

	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Size of the FFT to test: 64", lines[0])
	assert.Regexp(t, `^Reference FFT took \d+ ns for a speed of \S+ samples per second$`, lines[1])
	assert.Regexp(t, `^Generated FFT took \d+ ns for a speed of \S+ samples per second$`, lines[2])
	assert.Equal(t, "Generated FFT matched Reference FFT output", lines[3])
}

func TestRunEveryImplementation(t *testing.T) {
	for _, impl := range []string{"dit", "dft", "gonum", "godsp"} {
		code, stdout, stderr := runCLI(t, "-impl", impl, "-loops", "3", "-seed", "1", "32")

		require.Equal(t, 0, code, "%s: %s", impl, stderr)
		assert.Contains(t, stdout, "matched Reference FFT output", impl)
	}
}

func TestRunSizeMismatch(t *testing.T) {
	code, stdout, stderr := runCLI(t, "128")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "transform size mismatch")
}

func TestRunUnknownImplementation(t *testing.T) {
	code, _, stderr := runCLI(t, "-impl", "fftw", "8")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown implementation")
}

func TestRunUnknownProfileMode(t *testing.T) {
	code, _, stderr := runCLI(t, "-profile", "block", "-loops", "1", "8")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown profile mode")
}

func TestRunUnknownLogFormat(t *testing.T) {
	code, _, stderr := runCLI(t, "-log-format", "xml", "8")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown log format")
}

func TestRunBadFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "-nope", "8")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage: fftbench")
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "-impl")
}

func TestRunVerboseJSONLogs(t *testing.T) {
	code, _, stderr := runCLI(t, "-v", "-log-format", "json", "-loops", "2", "-seed", "5", "16")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, `"msg":"starting run"`)
	assert.Contains(t, stderr, `"msg":"outputs match"`)
}

func TestRunCPUProfile(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCLI(t, "-profile", "cpu", "-profile-dir", dir, "-loops", "2", "8")
	require.Equal(t, 0, code, stderr)

	_, err := os.Stat(filepath.Join(dir, "cpu.pprof"))
	assert.NoError(t, err)
}

func TestExitStatus(t *testing.T) {
	assert.Equal(t, 0, exitStatus(true, false))
	assert.Equal(t, 0, exitStatus(true, true))
	assert.Equal(t, 0, exitStatus(false, false))
	assert.Equal(t, 1, exitStatus(false, true))
}
