package fft

// ScaleInPlace multiplies each element of dst by scale.
func ScaleInPlace[T Complex](dst []T, scale float64) {
	if scale == 1 {
		return
	}

	factor := complexFromFloat64[T](scale, 0)
	for i := range dst {
		dst[i] *= factor
	}
}

// ConjugateInPlace replaces each element of dst with its complex conjugate.
func ConjugateInPlace[T Complex](dst []T) {
	for i, v := range dst {
		dst[i] = conj(v)
	}
}

func conj[T Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		panic("unsupported complex type")
	}
}
