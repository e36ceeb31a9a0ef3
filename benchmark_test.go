package gmath

import (
	"math"
	"testing"
)

var (
	sinkF32 float32
	sinkA   Angle
	sinkM3  Mat3[float32]
	sinkM4  Mat4[float32]
)

// BenchmarkSin compares the table lookup against the math package.
func BenchmarkSin(b *testing.B) {
	b.Run("Angle", func(b *testing.B) {
		b.ReportAllocs()
		var a Angle
		for i := 0; i < b.N; i++ {
			sinkF32 += a.Sin() + a.Cos()
			a++
		}
	})
	b.Run("math", func(b *testing.B) {
		b.ReportAllocs()
		var a Angle
		for i := 0; i < b.N; i++ {
			r := float64(a) / 256 * 2 * math.Pi
			sinkF32 += float32(math.Sin(r)) + float32(math.Cos(r))
			a++
		}
	})
}

func BenchmarkFromRadians(b *testing.B) {
	b.ReportAllocs()
	r := float32(0.1)
	for i := 0; i < b.N; i++ {
		sinkA = FromRadians(r)
		r += 0.01
	}
}

func BenchmarkRotation2D(b *testing.B) {
	b.ReportAllocs()
	var a Angle
	for i := 0; i < b.N; i++ {
		sinkM3 = Rotation2D(a).Mul(sinkM3)
		a++
	}
}

func BenchmarkMat4_Mul(b *testing.B) {
	m := Orthographic[float32](0, 800, 600, 0, -1, 1)
	sinkM4 = Identity4[float32]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM4 = m.Mul(sinkM4)
	}
}
