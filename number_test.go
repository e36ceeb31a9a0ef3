package gmath

import (
	"math"
	"testing"
)

func TestISqrt_Exhaustive8And16(t *testing.T) {
	for x := 0; x <= math.MaxUint8; x++ {
		want := uint8(math.Floor(math.Sqrt(float64(x))))
		if got := ISqrt8(uint8(x)); got != want {
			t.Errorf("ISqrt8(%d) = %d, want %d", x, got, want)
		}
	}
	for x := 0; x <= math.MaxUint16; x++ {
		want := uint16(math.Floor(math.Sqrt(float64(x))))
		if got := ISqrt16(uint16(x)); got != want {
			t.Fatalf("ISqrt16(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestISqrt_Wide(t *testing.T) {
	tests32 := []struct {
		x, want uint32
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{7, 2},
		{1 << 20, 1 << 10},
		{65535 * 65535, 65535},
		{65535*65535 - 1, 65534},
		{math.MaxUint32, 65535},
	}
	for _, tt := range tests32 {
		if got := ISqrt32(tt.x); got != tt.want {
			t.Errorf("ISqrt32(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}

	tests64 := []struct {
		x, want uint64
	}{
		{0, 0},
		{3, 1},
		{1 << 62, 1 << 31},
		{math.MaxUint32 * math.MaxUint32, math.MaxUint32},
		{math.MaxUint64, math.MaxUint32},
	}
	for _, tt := range tests64 {
		if got := ISqrt64(tt.x); got != tt.want {
			t.Errorf("ISqrt64(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestSqrt(t *testing.T) {
	if got := Sqrt(int32(17)); got != 4 {
		t.Errorf("Sqrt(int32(17)) = %d, want 4", got)
	}
	if got := Sqrt(-4); got != 0 {
		t.Errorf("Sqrt(-4) = %d, want 0", got)
	}
	if got := Sqrt(Angle(200)); got != 14 {
		t.Errorf("Sqrt(Angle(200)) = %v, want Angle(14)", got)
	}
	if got := Sqrt(float32(2)); !approx32(got, math.Sqrt2, 1e-6) {
		t.Errorf("Sqrt(float32(2)) = %v, want √2", got)
	}
	if got := Sqrt(0.25); got != 0.5 {
		t.Errorf("Sqrt(0.25) = %v, want 0.5", got)
	}
	if got := Sqrt(-1.0); got != 0 {
		t.Errorf("Sqrt(-1.0) = %v, want 0", got)
	}
}

func TestZeroOne(t *testing.T) {
	if Zero[float32]() != 0 || One[float32]() != 1 {
		t.Error("float32 identities wrong")
	}
	if Zero[Angle]() != Angle0 || One[Angle]() != Angle(1) {
		t.Error("Angle identities wrong")
	}
	if Zero[int8]() != 0 || One[uint64]() != 1 {
		t.Error("integer identities wrong")
	}
}

func TestIsFloat(t *testing.T) {
	if !isFloat[float32]() || !isFloat[float64]() {
		t.Error("isFloat reported false for a float type")
	}
	if isFloat[int]() || isFloat[uint8]() || isFloat[Angle]() {
		t.Error("isFloat reported true for an integer type")
	}
}
