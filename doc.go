// Package gmath provides small, allocation-free geometry primitives for Go.
//
// # Overview
//
// gmath offers fixed-size generic vectors (Vec2, Vec3, Vec4), column-major
// matrices (Mat3, Mat4) and a one-byte binary angle type. It targets
// real-time graphics and embedded callers that want cheap value types
// without a full numerics stack.
//
// # Binary angles
//
// An Angle stores a fraction of a full turn in a single byte: 256 steps
// cover 2π, so Angle90 is 64 and Angle180 is 128. Arithmetic wraps modulo
// 256 and every byte is a valid angle.
//
//	a := gmath.Angle(32)        // 45°
//	b := a.Add(gmath.Angle90)   // 135°
//	s, c := b.Sin(), b.Cos()    // table lookups, no transcendental calls
//
// Sine and cosine come from a 65-entry quarter-wave table folded across the
// four quadrants. Radians and FromRadians convert through a second
// 256-entry table and rounding, respectively.
//
// Ordering between angles compares the raw byte, not circular distance.
//
// # Vectors and matrices
//
// Vectors and matrices are generic over any integer or floating-point type,
// including Angle. Homogeneous 2D transforms are built with Scaling2D,
// Translation2D and Rotation2D:
//
//	m := gmath.Translation2D(gmath.V2[float32](10, 0)).
//		Mul(gmath.Rotation2D(gmath.Angle90))
//	p := m.TransformPoint2(gmath.V2[float32](1, 0)) // ≈ (10, 1, 1)
//
// Interop helpers convert to golang.org/x/image/math/f32 and to gonum's
// spatial/r2 and spatial/r3 vectors.
//
// # Coordinate System
//
// Angles increase counter-clockwise in a Y-up frame: Rotation2D(Angle90)
// maps the X axis onto the Y axis.
//
// # Concurrency
//
// All types are immutable values and the lookup tables are never written
// after package initialization, so everything is safe for concurrent use.
package gmath

// Version is the current version of the library.
const Version = "0.1.0"
