package fft

import "testing"

func TestScaleInPlace(t *testing.T) {
	t.Parallel()

	x := []complex128{2 + 4i, -6i}
	ScaleInPlace(x, 0.5)

	if x[0] != 1+2i || x[1] != -3i {
		t.Errorf("ScaleInPlace = %v", x)
	}

	y := []complex64{1 + 1i}
	ScaleInPlace(y, 1)

	if y[0] != 1+1i {
		t.Errorf("ScaleInPlace with 1 changed value to %v", y[0])
	}
}

func TestConjugateInPlace(t *testing.T) {
	t.Parallel()

	x := []complex128{1 + 2i, -3 - 4i, 5}
	ConjugateInPlace(x)

	want := []complex128{1 - 2i, -3 + 4i, 5}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
