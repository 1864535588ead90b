// Command fftgen writes a fully unrolled Go transform for one fixed size.
//
// Usage:
//
//	fftgen -n 64 [-inverse] [-pkg generated] [-func Forward64] [-o forward64.go]
//
// Without -o the source is written to stdout.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/fftbench/internal/codegen"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fftgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		size    = fs.Int("n", 0, "transform size (power of two)")
		inverse = fs.Bool("inverse", false, "emit the 1/N normalized inverse transform")
		pkg     = fs.String("pkg", "generated", "package clause of the emitted file")
		name    = fs.String("func", "", "function name (default ForwardN or InverseN)")
		out     = fs.String("o", "", "output file (default stdout)")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	cfg := codegen.Config{
		Package: *pkg,
		Func:    *name,
		Size:    *size,
		Inverse: *inverse,
	}

	var buf bytes.Buffer
	if err := codegen.Generate(&buf, cfg); err != nil {
		fmt.Fprintf(stderr, "fftgen: %v\n", err)
		return 2
	}

	if *out == "" {
		if _, err := buf.WriteTo(stdout); err != nil {
			fmt.Fprintf(stderr, "fftgen: %v\n", err)
			return 1
		}

		return 0
	}

	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(stderr, "fftgen: %v\n", err)
		return 1
	}

	return 0
}
