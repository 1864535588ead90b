// Command fftbench times the reference recursive FFT against a candidate
// transform of the same size and checks that both produce the same output.
//
// Usage:
//
//	fftbench [flags] N
//
// Flags must precede N. Run "fftbench -h" for the list.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	"github.com/cwbudde/fftbench"
)

const usageLine = "Provide the size of the FFT to test as a command line argument"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fftbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		impl      = fs.String("impl", "generated", "candidate transform: "+strings.Join(fftbench.Implementations(), ", "))
		loops     = fs.Int("loops", fftbench.DefaultLoops, "calls per timed loop")
		seed      = fs.Uint64("seed", 0, "test vector seed (0 draws one from crypto/rand)")
		tol       = fs.Float64("tol", fftbench.DefaultTolerance, "largest squared-magnitude error per sample")
		strict    = fs.Bool("strict", false, "exit with status 1 when the outputs differ")
		mode      = fs.String("profile", "", "profile the run: cpu, mem or trace")
		dir       = fs.String("profile-dir", ".", "directory for profile output")
		verbose   = fs.Bool("v", false, "enable debug logging")
		logFormat = fs.String("log-format", "text", "log format on stderr: text or json")
	)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: fftbench [flags] N\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, usageLine)
		return 0
	}

	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "fftbench: invalid size %q: not an integer\n", fs.Arg(0))
		return 2
	}

	logger, err := newLogger(stderr, *logFormat, *verbose)
	if err != nil {
		fmt.Fprintf(stderr, "fftbench: %v\n", err)
		return 2
	}

	cfg := fftbench.DefaultConfig(n)
	cfg.Loops = *loops
	cfg.Seed = *seed
	cfg.Tolerance = *tol

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "fftbench: %v\n", err)
		return 2
	}

	candidate, err := fftbench.NewImplementation(*impl, n)
	if err != nil {
		fmt.Fprintf(stderr, "fftbench: %v\n", err)
		return 1
	}

	h, err := fftbench.New(cfg, candidate, fftbench.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "fftbench: %v\n", err)
		return 1
	}

	stop, err := startProfile(*mode, *dir)
	if err != nil {
		fmt.Fprintf(stderr, "fftbench: %v\n", err)
		return 2
	}

	report, err := runLocked(h)

	stop()

	if err != nil {
		fmt.Fprintf(stderr, "fftbench: %v\n", err)
		return 1
	}

	if _, err := report.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "fftbench: %v\n", err)
		return 1
	}

	return exitStatus(report.Passed(), *strict)
}

// runLocked keeps the timed loops on one OS thread.
func runLocked(h *fftbench.Harness) (*fftbench.Report, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	return h.Run()
}

// exitStatus maps the validation outcome to the process status. Mismatches
// are reported but only fail the process with -strict.
func exitStatus(passed, strict bool) int {
	if !passed && strict {
		return 1
	}

	return 0
}

func newLogger(w io.Writer, format string, verbose bool) (*fftbench.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	switch format {
	case "text":
		return fftbench.NewTextLogger(w, level), nil
	case "json":
		return fftbench.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func startProfile(mode, dir string) (func(), error) {
	var opt func(*profile.Profile)

	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "trace":
		opt = profile.TraceProfile
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu, mem or trace)", mode)
	}

	p := profile.Start(opt, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)

	return p.Stop, nil
}
