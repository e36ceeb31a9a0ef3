package gmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types accepted by vectors and matrices.
// Angle satisfies it through its uint8 underlying type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed is the set of scalar types with a meaningful negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Unsigned is the set of unsigned integer types, including Angle.
type Unsigned = constraints.Unsigned

// Integer is the set of integer types.
type Integer = constraints.Integer

// Float is the set of floating-point types.
type Float = constraints.Float

// Zero returns the additive identity of T.
func Zero[T Scalar]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Scalar]() T { return 1 }

// Trigonometric is implemented by angle representations that can report
// their sine and cosine. Rotation constructors accept any of them.
type Trigonometric interface {
	Sin() float32
	Cos() float32
}

// Radians is an angle in radians evaluated with the math package.
type Radians float32

// Sin returns the sine of r.
func (r Radians) Sin() float32 { return float32(math.Sin(float64(r))) }

// Cos returns the cosine of r.
func (r Radians) Cos() float32 { return float32(math.Cos(float64(r))) }

// Angle quantizes r to the nearest binary angle.
func (r Radians) Angle() Angle { return FromRadians(float32(r)) }

// Sqrt returns the square root of x. Floating-point types use math.Sqrt,
// integer types return floor(sqrt(x)). Non-positive input yields zero.
func Sqrt[T Scalar](x T) T {
	if x <= 0 {
		return 0
	}
	if isFloat[T]() {
		return T(math.Sqrt(float64(x)))
	}
	return T(ISqrt64(uint64(x)))
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Scalar]() bool {
	var half T = 1
	half /= 2
	return half != 0
}
