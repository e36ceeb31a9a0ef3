package gmath

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec2 is a two-component vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// Vec3 is a three-component vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Vec4 is a four-component vector.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// V2 is a convenience function to create a Vec2.
func V2[T Scalar](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// V3 is a convenience function to create a Vec3.
func V3[T Scalar](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

// V4 is a convenience function to create a Vec4.
func V4[T Scalar](x, y, z, w T) Vec4[T] { return Vec4[T]{X: x, Y: y, Z: z, W: w} }

// Vec2FromAngle returns the unit vector (cos a, sin a).
func Vec2FromAngle[A Trigonometric](a A) Vec2[float32] {
	return Vec2[float32]{X: a.Cos(), Y: a.Sin()}
}

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X + w.X, v.Y + w.Y} }

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X - w.X, v.Y - w.Y} }

// Mul returns the vector scaled by s.
func (v Vec2[T]) Mul(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Div returns the vector divided by s.
// For integer element types it panics if s is zero.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// Scale returns the component-wise product of two vectors.
func (v Vec2[T]) Scale(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X * w.X, v.Y * w.Y} }

// Neg returns the negation of the vector. Unsigned components wrap.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 3D cross product with z=0.
func (v Vec2[T]) Cross(w Vec2[T]) T { return v.X*w.Y - v.Y*w.X }

// LengthSq returns the squared length of the vector.
func (v Vec2[T]) LengthSq() T { return v.Dot(v) }

// Length returns the length of the vector, see Sqrt for integer types.
func (v Vec2[T]) Length() T { return Sqrt(v.LengthSq()) }

// Extend appends z, typically 1 for a homogeneous point.
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v.X, v.Y, z} }

// F32 converts v to an x/image float32 vector.
func (v Vec2[T]) F32() f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }

// R2 converts v to a gonum float64 vector.
func (v Vec2[T]) R2() r2.Vec { return r2.Vec{X: float64(v.X), Y: float64(v.Y)} }

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns the difference of two vectors.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Mul returns the vector scaled by s.
func (v Vec3[T]) Mul(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Div returns the vector divided by s.
// For integer element types it panics if s is zero.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Scale returns the component-wise product of two vectors.
func (v Vec3[T]) Scale(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }

// Neg returns the negation of the vector. Unsigned components wrap.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product of two vectors.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// LengthSq returns the squared length of the vector.
func (v Vec3[T]) LengthSq() T { return v.Dot(v) }

// Length returns the length of the vector, see Sqrt for integer types.
func (v Vec3[T]) Length() T { return Sqrt(v.LengthSq()) }

// XY drops the Z component.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// Extend appends w, typically 1 for a homogeneous point.
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }

// F32 converts v to an x/image float32 vector.
func (v Vec3[T]) F32() f32.Vec3 { return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }

// R3 converts v to a gonum float64 vector.
func (v Vec3[T]) R3() r3.Vec { return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)} }

// Add returns the sum of two vectors.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns the difference of two vectors.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Mul returns the vector scaled by s.
func (v Vec4[T]) Mul(s T) Vec4[T] { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Div returns the vector divided by s.
// For integer element types it panics if s is zero.
func (v Vec4[T]) Div(s T) Vec4[T] { return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Scale returns the component-wise product of two vectors.
func (v Vec4[T]) Scale(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z, v.W * w.W}
}

// Neg returns the negation of the vector. Unsigned components wrap.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns the dot product of two vectors.
func (v Vec4[T]) Dot(w Vec4[T]) T { return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W }

// LengthSq returns the squared length of the vector.
func (v Vec4[T]) LengthSq() T { return v.Dot(v) }

// XYZ drops the W component.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// F32 converts v to an x/image float32 vector.
func (v Vec4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Vec2FromF32 converts an x/image vector. Integer element types truncate.
func Vec2FromF32[T Scalar](v f32.Vec2) Vec2[T] { return Vec2[T]{T(v[0]), T(v[1])} }

// Vec3FromF32 converts an x/image vector. Integer element types truncate.
func Vec3FromF32[T Scalar](v f32.Vec3) Vec3[T] { return Vec3[T]{T(v[0]), T(v[1]), T(v[2])} }

// Vec4FromF32 converts an x/image vector. Integer element types truncate.
func Vec4FromF32[T Scalar](v f32.Vec4) Vec4[T] {
	return Vec4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

// Vec2FromR2 converts a gonum vector. Integer element types truncate.
func Vec2FromR2[T Scalar](v r2.Vec) Vec2[T] { return Vec2[T]{T(v.X), T(v.Y)} }

// Vec3FromR3 converts a gonum vector. Integer element types truncate.
func Vec3FromR3[T Scalar](v r3.Vec) Vec3[T] { return Vec3[T]{T(v.X), T(v.Y), T(v.Z)} }

// Distance2 returns the Euclidean distance between a and b.
func Distance2[T Signed](a, b Vec2[T]) T { return b.Sub(a).Length() }

// Distance3 returns the Euclidean distance between a and b.
func Distance3[T Signed](a, b Vec3[T]) T { return b.Sub(a).Length() }

// RemVec2 returns the component-wise remainder of v by d.
func RemVec2[T Integer](v Vec2[T], d T) Vec2[T] { return Vec2[T]{v.X % d, v.Y % d} }

// RemVec3 returns the component-wise remainder of v by d.
func RemVec3[T Integer](v Vec3[T], d T) Vec3[T] { return Vec3[T]{v.X % d, v.Y % d, v.Z % d} }

// RemVec4 returns the component-wise remainder of v by d.
func RemVec4[T Integer](v Vec4[T], d T) Vec4[T] {
	return Vec4[T]{v.X % d, v.Y % d, v.Z % d, v.W % d}
}

// RemVec2By returns the remainder of each component of v by the matching
// component of d.
func RemVec2By[T Integer](v, d Vec2[T]) Vec2[T] { return Vec2[T]{v.X % d.X, v.Y % d.Y} }
