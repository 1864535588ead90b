// Package fftbench compares a reference recursive FFT against a candidate
// transform of a fixed size: it times both over a fixed number of calls and
// checks that their outputs agree sample by sample.
//
// A run looks like:
//
//	impl, err := fftbench.NewImplementation("generated", 64)
//	if err != nil {
//	    return err
//	}
//
//	h, err := fftbench.New(fftbench.DefaultConfig(64), impl)
//	if err != nil {
//	    return err
//	}
//
//	report, err := h.Run()
//	if err != nil {
//	    return err
//	}
//
//	report.WriteTo(os.Stdout)
//
// The harness is single-threaded. Timed loops never overlap.
package fftbench
