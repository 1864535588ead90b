// Package generated holds fully unrolled fixed-size forward transforms
// produced by cmd/fftgen. Each kernel only handles the size it was generated
// for; Lookup maps a size to its kernel.
package generated

//go:generate go run ../../cmd/fftgen -n 8 -o forward8.go
//go:generate go run ../../cmd/fftgen -n 16 -o forward16.go
//go:generate go run ../../cmd/fftgen -n 32 -o forward32.go
//go:generate go run ../../cmd/fftgen -n 64 -o forward64.go
