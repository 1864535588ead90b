package math

import (
	"strconv"
	"testing"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      int
		nbits  int
		expect int
	}{
		{"zero value", 0, 3, 0},
		{"zero nbits", 6, 0, 0},
		{"negative nbits", 6, -1, 0},

		{"1 bit: 1", 1, 1, 1},
		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},

		{"3 bits: 0b001", 0b001, 3, 0b100},
		{"3 bits: 0b011", 0b011, 3, 0b110},
		{"3 bits: 0b110", 0b110, 3, 0b011},
		{"3 bits: 0b111", 0b111, 3, 0b111},

		{"4 bits: 0b0011", 0b0011, 4, 0b1100},
		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"10 bits: 0x123", 0x123, 10, 0x312},
		{"16 bits: 0x1234", 0x1234, 16, 0x2C48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReverseBits(tt.x, tt.nbits)
			if got != tt.expect {
				t.Errorf("ReverseBits(%#b, %d) = %#b, want %#b", tt.x, tt.nbits, got, tt.expect)
			}
		})
	}
}

func TestBitReversalIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      int
		expect []int
	}{
		{0, nil},
		{-1, nil},
		{1, []int{0}},
		{2, []int{0, 1}},
		{4, []int{0, 2, 1, 3}},
		{8, []int{0, 4, 2, 6, 1, 5, 3, 7}},
		{16, []int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}},
	}

	for _, tt := range tests {
		t.Run("n="+strconv.Itoa(tt.n), func(t *testing.T) {
			t.Parallel()

			got := BitReversalIndices(tt.n)
			if len(got) != len(tt.expect) {
				t.Fatalf("BitReversalIndices(%d) returned length %d, want %d", tt.n, len(got), len(tt.expect))
			}

			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("BitReversalIndices(%d)[%d] = %d, want %d", tt.n, i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestBitReversalIndicesIsInvolution(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 64, 1024} {
		indices := BitReversalIndices(n)
		for i := range n {
			if indices[indices[i]] != i {
				t.Fatalf("n=%d: indices[indices[%d]] = %d, want %d", n, i, indices[indices[i]], i)
			}
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{8, 3},
		{1024, 10},
	}

	for _, tt := range tests {
		if got := Log2(tt.n); got != tt.want {
			t.Errorf("Log2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want bool
	}{
		{-2, false},
		{-1, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{6, false},
		{64, true},
		{1000, false},
		{1 << 20, true},
	}

	for _, tt := range tests {
		if got := IsPowerOf2(tt.n); got != tt.want {
			t.Errorf("IsPowerOf2(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	t.Parallel()

	tests := []struct{ n, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {64, 64}, {65, 128},
	}

	for _, tt := range tests {
		if got := NextPowerOf2(tt.n); got != tt.want {
			t.Errorf("NextPowerOf2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func BenchmarkBitReversalIndices(b *testing.B) {
	for _, n := range []int{64, 1024, 65536} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			for range b.N {
				_ = BitReversalIndices(n)
			}
		})
	}
}
