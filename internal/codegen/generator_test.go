package codegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/cmplx"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/fftbench/internal/reference"
)

// evalKernel parses src and interprets the body of fn on input. Only the
// statement forms the generator emits are supported.
func evalKernel(t *testing.T, src []byte, fn string, input []complex128) []complex128 {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "kernel.go", src, 0)
	require.NoError(t, err)

	var decl *ast.FuncDecl

	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Name.Name == fn {
			decl = fd
		}
	}

	require.NotNil(t, decl, "function %s not found", fn)

	env := map[string][]complex128{
		"in":  append([]complex128(nil), input...),
		"out": make([]complex128, len(input)),
	}

	var eval func(e ast.Expr) complex128

	index := func(e *ast.IndexExpr) (string, int) {
		name := e.X.(*ast.Ident).Name
		i, err := strconv.Atoi(e.Index.(*ast.BasicLit).Value)
		require.NoError(t, err)

		return name, i
	}

	eval = func(e ast.Expr) complex128 {
		switch e := e.(type) {
		case *ast.BasicLit:
			v, err := strconv.ParseFloat(e.Value, 64)
			require.NoError(t, err)

			return complex(v, 0)
		case *ast.UnaryExpr:
			require.Equal(t, token.SUB, e.Op)
			return -eval(e.X)
		case *ast.ParenExpr:
			return eval(e.X)
		case *ast.IndexExpr:
			name, i := index(e)
			return env[name][i]
		case *ast.CallExpr:
			require.Equal(t, "complex", e.Fun.(*ast.Ident).Name)
			return complex(real(eval(e.Args[0])), real(eval(e.Args[1])))
		case *ast.BinaryExpr:
			x, y := eval(e.X), eval(e.Y)
			switch e.Op {
			case token.ADD:
				return x + y
			case token.SUB:
				return x - y
			case token.MUL:
				return x * y
			case token.QUO:
				return x / y
			}
		}

		t.Fatalf("unsupported expression %T", e)

		return 0
	}

	for _, stmt := range decl.Body.List {
		switch s := stmt.(type) {
		case *ast.DeclStmt:
			spec := s.Decl.(*ast.GenDecl).Specs[0].(*ast.ValueSpec)
			length, err := strconv.Atoi(spec.Type.(*ast.ArrayType).Len.(*ast.BasicLit).Value)
			require.NoError(t, err)

			env[spec.Names[0].Name] = make([]complex128, length)
		case *ast.AssignStmt:
			name, i := index(s.Lhs[0].(*ast.IndexExpr))
			env[name][i] = eval(s.Rhs[0])
		default:
			t.Fatalf("unsupported statement %T", stmt)
		}
	}

	return env["out"]
}

func randomInput(n int) []complex128 {
	rng := rand.New(rand.NewPCG(uint64(n), 2))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*20-10, rng.Float64()*20-10)
	}

	return out
}

func TestSourceRejectsInvalidSizes(t *testing.T) {
	for _, n := range []int{-4, 0, 3, 12, 100} {
		_, err := Source(Config{Size: n})
		require.ErrorIs(t, err, ErrInvalidSize, "size %d", n)
	}
}

func TestSourceForwardMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 32} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			src, err := Source(Config{Size: n})
			require.NoError(t, err)

			in := randomInput(n)
			got := evalKernel(t, src, "Forward"+strconv.Itoa(n), in)
			want := reference.NaiveDFT(in)

			for i := range want {
				assert.InDelta(t, 0, cmplx.Abs(got[i]-want[i]), 1e-9, "bin %d", i)
			}
		})
	}
}

func TestSourceInverseRoundTrip(t *testing.T) {
	const n = 16

	src, err := Source(Config{Size: n, Inverse: true})
	require.NoError(t, err)
	assert.Contains(t, string(src), "func Inverse16(in, out *[16]complex128)")
	assert.Contains(t, string(src), "/ 16")

	in := randomInput(n)
	got := evalKernel(t, src, "Inverse16", reference.NaiveDFT(in))

	for i := range in {
		assert.InDelta(t, 0, cmplx.Abs(got[i]-in[i]), 1e-9, "sample %d", i)
	}
}

func TestSourceHeader(t *testing.T) {
	src, err := Source(Config{Size: 4, Package: "kernels", Func: "DFT4"})
	require.NoError(t, err)

	text := string(src)
	assert.Contains(t, text, "// Code generated by fftgen. DO NOT EDIT.")
	assert.Contains(t, text, "package kernels")
	assert.Contains(t, text, "func DFT4(in, out *[4]complex128) {")

	file, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "kernels", file.Name.Name)
}

func TestSourceSizeOne(t *testing.T) {
	src, err := Source(Config{Size: 1})
	require.NoError(t, err)
	assert.Contains(t, string(src), "out[0] = in[0]\n")
}

func TestGenerateWritesSource(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, Config{Size: 8}))

	want, err := Source(Config{Size: 8})
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())

	err = Generate(&buf, Config{Size: 6})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func ExampleSource() {
	src, _ := Source(Config{Size: 2})
	fmt.Print(string(src))
	// Output:
	// // Code generated by fftgen. DO NOT EDIT.
	//
	// package generated
	//
	// // Forward2 computes the 2-point forward DFT of in and stores it in out.
	// func Forward2(in, out *[2]complex128) {
	// 	var ina0 [1]complex128
	// 	ina0[0] = in[0]
	// 	var inb0 [1]complex128
	// 	inb0[0] = in[1]
	// 	out[0] = ina0[0] + complex(1, 0)*inb0[0]
	// 	out[1] = ina0[0] - complex(1, 0)*inb0[0]
	// }
}
