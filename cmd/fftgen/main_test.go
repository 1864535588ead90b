package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "4", "-pkg", "kernels", "-func", "FFT4"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	src := stdout.String()
	assert.Contains(t, src, "// Code generated by fftgen. DO NOT EDIT.")
	assert.Contains(t, src, "package kernels")
	assert.Contains(t, src, "func FFT4(in, out *[4]complex128)")
}

func TestRunInverseDefaultName(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "8", "-inverse"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "func Inverse8(in, out *[8]complex128)")
}

func TestRunWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forward16.go")

	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "16", "-o", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stdout.String())

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func Forward16(in, out *[16]complex128)")
}

func TestRunRejectsInvalidSize(t *testing.T) {
	for _, n := range []string{"0", "6", "-4"} {
		var stdout, stderr bytes.Buffer

		code := run([]string{"-n", n}, &stdout, &stderr)
		assert.Equal(t, 2, code, n)
		assert.Empty(t, stdout.String(), n)
		assert.Contains(t, stderr.String(), "power of two", n)
	}
}
