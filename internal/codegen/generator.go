// Package codegen emits straight-line Go source for a fixed-size DFT.
//
// The emitted function has no loops and no twiddle table: every butterfly
// is written out with its twiddle factor as a complex literal. Lengths
// divisible by four are split radix-4, the remaining factor of two radix-2.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"math"
	"strconv"

	m "github.com/cwbudde/fftbench/internal/math"
)

// ErrInvalidSize is returned when the requested size is not a power of two.
var ErrInvalidSize = errors.New("codegen: size must be a positive power of two")

// Config selects what Generate emits.
type Config struct {
	// Package is the package clause of the emitted file. Default "generated".
	Package string
	// Func is the function name. Default ForwardN or InverseN.
	Func string
	// Size is the transform length N, baked into the function signature.
	Size int
	// Inverse selects positive phase polarity and 1/N normalization.
	Inverse bool
}

func (c Config) withDefaults() Config {
	if c.Package == "" {
		c.Package = "generated"
	}

	if c.Func == "" {
		if c.Inverse {
			c.Func = "Inverse" + strconv.Itoa(c.Size)
		} else {
			c.Func = "Forward" + strconv.Itoa(c.Size)
		}
	}

	return c
}

// Generate writes a gofmt'd Go source file for cfg to w.
func Generate(w io.Writer, cfg Config) error {
	src, err := Source(cfg)
	if err != nil {
		return err
	}

	_, err = w.Write(src)

	return err
}

// Source returns the gofmt'd Go source file for cfg.
func Source(cfg Config) ([]byte, error) {
	if !m.IsPowerOf2(cfg.Size) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Size)
	}

	cfg = cfg.withDefaults()

	e := &emitter{n: cfg.Size, sign: -1}
	direction := "forward"

	if cfg.Inverse {
		e.sign = 1
		direction = "normalized inverse"
	}

	fmt.Fprintf(&e.buf, "// Code generated by fftgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&e.buf, "package %s\n\n", cfg.Package)
	fmt.Fprintf(&e.buf, "// %s computes the %d-point %s DFT of in and stores it in out.\n", cfg.Func, cfg.Size, direction)
	fmt.Fprintf(&e.buf, "func %s(in, out *[%d]complex128) {\n", cfg.Func, cfg.Size)

	e.recurse("in", labels("in", cfg.Size), labels("out", cfg.Size), 0)

	e.buf.WriteString("}\n")

	src, err := format.Source(e.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format %s: %w", cfg.Func, err)
	}

	return src, nil
}

type emitter struct {
	buf  bytes.Buffer
	n    int
	sign float64
}

// recurse emits the statements computing the DFT of the values named by in
// into the locations named by out.
func (e *emitter) recurse(stem string, in, out []string, depth int) {
	n := len(in)

	switch {
	case n <= 1:
		if e.sign > 0 {
			fmt.Fprintf(&e.buf, "\t%s = %s / %d\n", out[0], in[0], e.n)
		} else {
			fmt.Fprintf(&e.buf, "\t%s = %s\n", out[0], in[0])
		}
	case n%4 == 0:
		e.radix4(stem, in, out, depth)
	default:
		e.radix2(stem, in, out, depth)
	}
}

func (e *emitter) radix4(stem string, in, out []string, depth int) {
	n := len(in)
	quarter := n / 4

	var sub [4][]string
	for q := range 4 {
		sub[q] = e.phase(stem, in, q, 4, depth)
	}

	// W_4^(q*p) for the output quarter p and input phase q.
	rot := [4]complex128{1, complex(0, e.sign), -1, complex(0, -e.sign)}

	for p := range 4 {
		for j := range quarter {
			fmt.Fprintf(&e.buf, "\t%s = %s", out[j+p*quarter], sub[0][j])

			for q := 1; q < 4; q++ {
				fmt.Fprintf(&e.buf, " + %s*%s", e.twiddle(q*j, n, rot[(q*p)%4]), sub[q][j])
			}

			e.buf.WriteString("\n")
		}
	}
}

func (e *emitter) radix2(stem string, in, out []string, depth int) {
	half := len(in) / 2

	even := e.phase(stem, in, 0, 2, depth)
	odd := e.phase(stem, in, 1, 2, depth)

	for j := range half {
		w := e.twiddle(j, len(in), 1)
		fmt.Fprintf(&e.buf, "\t%s = %s + %s*%s\n", out[j], even[j], w, odd[j])
		fmt.Fprintf(&e.buf, "\t%s = %s - %s*%s\n", out[j+half], even[j], w, odd[j])
	}
}

// phase declares a local array for the inputs in[phase::radix], emits their
// sub-transform into it and returns the element names.
func (e *emitter) phase(stem string, in []string, phase, radix, depth int) []string {
	length := len(in) / radix
	name := fmt.Sprintf("%s%c%d", stem, rune('a'+phase), depth)

	fmt.Fprintf(&e.buf, "\tvar %s [%d]complex128\n", name, length)

	sliced := make([]string, 0, length)
	for i := phase; i < len(in); i += radix {
		sliced = append(sliced, in[i])
	}

	out := labels(name, length)
	e.recurse(name, sliced, out, depth+1)

	return out
}

// twiddle formats exp(sign*2*pi*i*k/n)*scale as a complex literal.
func (e *emitter) twiddle(k, n int, scale complex128) string {
	angle := e.sign * 2 * math.Pi * float64(k) / float64(n)
	w := complex(math.Cos(angle), math.Sin(angle)) * scale

	return "complex(" + formatFloat(real(w)) + ", " + formatFloat(imag(w)) + ")"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func labels(name string, count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = name + "[" + strconv.Itoa(i) + "]"
	}

	return out
}
