package gmath

import "golang.org/x/image/math/f32"

// Mat3 is a 3x3 matrix stored as three column vectors.
//
// Used as a homogeneous 2D transform it maps (x, y, 1) to
//
//	x' = X.X*x + Y.X*y + Z.X
//	y' = X.Y*x + Y.Y*y + Z.Y
//
// so the translation lives in column Z.
type Mat3[T Scalar] struct {
	X, Y, Z Vec3[T]
}

// Mat4 is a 4x4 matrix stored as four column vectors, matching the OpenGL
// layout. Translation lives in column W.
type Mat4[T Scalar] struct {
	X, Y, Z, W Vec4[T]
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Scalar]() Mat3[T] {
	return Mat3[T]{
		X: Vec3[T]{1, 0, 0},
		Y: Vec3[T]{0, 1, 0},
		Z: Vec3[T]{0, 0, 1},
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Scalar]() Mat4[T] {
	return Mat4[T]{
		X: Vec4[T]{1, 0, 0, 0},
		Y: Vec4[T]{0, 1, 0, 0},
		Z: Vec4[T]{0, 0, 1, 0},
		W: Vec4[T]{0, 0, 0, 1},
	}
}

// Scaling2D creates a homogeneous 2D scaling matrix.
func Scaling2D[T Scalar](v Vec2[T]) Mat3[T] {
	return Mat3[T]{
		X: Vec3[T]{v.X, 0, 0},
		Y: Vec3[T]{0, v.Y, 0},
		Z: Vec3[T]{0, 0, 1},
	}
}

// Translation2D creates a homogeneous 2D translation matrix.
func Translation2D[T Scalar](v Vec2[T]) Mat3[T] {
	return Mat3[T]{
		X: Vec3[T]{1, 0, 0},
		Y: Vec3[T]{0, 1, 0},
		Z: Vec3[T]{v.X, v.Y, 1},
	}
}

// Rotation2D creates a homogeneous 2D rotation matrix. Positive angles turn
// the X axis towards the Y axis.
//
// Any Trigonometric works: an Angle reads the lookup table, Radians calls
// the math package.
func Rotation2D[A Trigonometric](a A) Mat3[float32] {
	c, s := a.Cos(), a.Sin()
	return Mat3[float32]{
		X: Vec3[float32]{c, s, 0},
		Y: Vec3[float32]{-s, c, 0},
		Z: Vec3[float32]{0, 0, 1},
	}
}

// Orthographic creates an OpenGL-style orthographic projection mapping the
// given box to the [-1, 1] clip cube.
//
// Only floating-point element types are accepted: integer division would
// truncate the 2/extent scale factors to 0 or ±1.
//
// A zero-extent axis would divide by zero; its extent is replaced by one
// and a warning is logged.
func Orthographic[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	rl := right - left
	tb := top - bottom
	fn := far - near
	if rl == 0 || tb == 0 || fn == 0 {
		Logger().Warn("gmath: degenerate orthographic volume",
			"left", left, "right", right,
			"bottom", bottom, "top", top,
			"near", near, "far", far)
		if rl == 0 {
			rl = 1
		}
		if tb == 0 {
			tb = 1
		}
		if fn == 0 {
			fn = 1
		}
	}
	return Mat4[T]{
		X: Vec4[T]{2 / rl, 0, 0, 0},
		Y: Vec4[T]{0, 2 / tb, 0, 0},
		Z: Vec4[T]{0, 0, -2 / fn, 0},
		W: Vec4[T]{-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1},
	}
}

// Mul returns the matrix product m * o. Applied to a vector, o acts first.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	return Mat3[T]{
		X: m.MulVec(o.X),
		Y: m.MulVec(o.Y),
		Z: m.MulVec(o.Z),
	}
}

// MulVec returns m * v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return m.X.Mul(v.X).Add(m.Y.Mul(v.Y)).Add(m.Z.Mul(v.Z))
}

// TransformPoint2 applies m to the homogeneous point (p.X, p.Y, 1).
func (m Mat3[T]) TransformPoint2(p Vec2[T]) Vec3[T] {
	return m.MulVec(p.Extend(1))
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		X: Vec3[T]{m.X.X, m.Y.X, m.Z.X},
		Y: Vec3[T]{m.X.Y, m.Y.Y, m.Z.Y},
		Z: Vec3[T]{m.X.Z, m.Y.Z, m.Z.Z},
	}
}

// Array flattens m column by column, ready for a GPU uniform upload.
func (m Mat3[T]) Array() [9]float32 {
	return [9]float32{
		float32(m.X.X), float32(m.X.Y), float32(m.X.Z),
		float32(m.Y.X), float32(m.Y.Y), float32(m.Y.Z),
		float32(m.Z.X), float32(m.Z.Y), float32(m.Z.Z),
	}
}

// F32 converts m to an x/image matrix, which is row major.
func (m Mat3[T]) F32() f32.Mat3 {
	return f32.Mat3(m.Transpose().Array())
}

// Mat3FromF32 converts a row-major x/image matrix.
func Mat3FromF32[T Scalar](a f32.Mat3) Mat3[T] {
	return Mat3[T]{
		X: Vec3[T]{T(a[0]), T(a[3]), T(a[6])},
		Y: Vec3[T]{T(a[1]), T(a[4]), T(a[7])},
		Z: Vec3[T]{T(a[2]), T(a[5]), T(a[8])},
	}
}

// Mul returns the matrix product m * o. Applied to a vector, o acts first.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	return Mat4[T]{
		X: m.MulVec(o.X),
		Y: m.MulVec(o.Y),
		Z: m.MulVec(o.Z),
		W: m.MulVec(o.W),
	}
}

// MulVec returns m * v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return m.X.Mul(v.X).Add(m.Y.Mul(v.Y)).Add(m.Z.Mul(v.Z)).Add(m.W.Mul(v.W))
}

// TransformPoint3 applies m to the homogeneous point (p.X, p.Y, p.Z, 1).
func (m Mat4[T]) TransformPoint3(p Vec3[T]) Vec4[T] {
	return m.MulVec(p.Extend(1))
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		X: Vec4[T]{m.X.X, m.Y.X, m.Z.X, m.W.X},
		Y: Vec4[T]{m.X.Y, m.Y.Y, m.Z.Y, m.W.Y},
		Z: Vec4[T]{m.X.Z, m.Y.Z, m.Z.Z, m.W.Z},
		W: Vec4[T]{m.X.W, m.Y.W, m.Z.W, m.W.W},
	}
}

// Array flattens m column by column, ready for a GPU uniform upload.
func (m Mat4[T]) Array() [16]float32 {
	return [16]float32{
		float32(m.X.X), float32(m.X.Y), float32(m.X.Z), float32(m.X.W),
		float32(m.Y.X), float32(m.Y.Y), float32(m.Y.Z), float32(m.Y.W),
		float32(m.Z.X), float32(m.Z.Y), float32(m.Z.Z), float32(m.Z.W),
		float32(m.W.X), float32(m.W.Y), float32(m.W.Z), float32(m.W.W),
	}
}

// F32 converts m to an x/image matrix, which is row major.
func (m Mat4[T]) F32() f32.Mat4 {
	return f32.Mat4(m.Transpose().Array())
}

// Mat4FromF32 converts a row-major x/image matrix.
func Mat4FromF32[T Scalar](a f32.Mat4) Mat4[T] {
	return Mat4[T]{
		X: Vec4[T]{T(a[0]), T(a[4]), T(a[8]), T(a[12])},
		Y: Vec4[T]{T(a[1]), T(a[5]), T(a[9]), T(a[13])},
		Z: Vec4[T]{T(a[2]), T(a[6]), T(a[10]), T(a[14])},
		W: Vec4[T]{T(a[3]), T(a[7]), T(a[11]), T(a[15])},
	}
}
