package gmath

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/image/math/fixed"
)

//go:generate go run ./cmd/angletab -format go -o angle_table.go

// Angle is a binary angle: a fraction of a full turn stored in one byte.
// Value v stands for v/256 of a turn, so Angle90 is 64 and Angle180 is 128.
//
// Arithmetic wraps modulo 256 and every byte is a valid angle. The native
// operators behave the same as the methods below; the methods exist so Angle
// can be passed where method values are expected.
//
// Ordering compares the raw byte and is not circular: Angle(255) > Angle(1)
// even though the two are two steps apart on the circle.
type Angle uint8

// Cardinal angles.
const (
	Angle0   Angle = 0
	Angle90  Angle = 64
	Angle180 Angle = 128
	Angle270 Angle = 192
)

const (
	quadrantMask = 0xC0
	offsetMask   = 0x3F
	quarterTurn  = 0x40

	radianToStep = 256 / (2 * math.Pi)
	degreeToStep = 256.0 / 360
	stepToDegree = 360.0 / 256
)

// quarterSineFixed mirrors quarterSine in 52.12 fixed point.
var quarterSineFixed [len(quarterSine)]fixed.Int52_12

func init() {
	for i, v := range quarterSine {
		quarterSineFixed[i] = fixed.Int52_12(math.Round(float64(v) * (1 << 12)))
	}
}

// Neg returns the angle pointing the opposite way around the circle, 0 - a.
func (a Angle) Neg() Angle { return -a }

// Add returns a + b modulo one turn.
func (a Angle) Add(b Angle) Angle { return a + b }

// Sub returns a - b modulo one turn.
func (a Angle) Sub(b Angle) Angle { return a - b }

// Mul returns a * b modulo 256.
func (a Angle) Mul(b Angle) Angle { return a * b }

// Div returns the integer quotient a / b.
// It panics if b is zero, exactly like integer division.
func (a Angle) Div(b Angle) Angle { return a / b }

// Rem returns the integer remainder a % b.
// It panics if b is zero, exactly like integer division.
func (a Angle) Rem(b Angle) Angle { return a % b }

// Cmp compares the raw byte values of a and b and returns -1, 0 or +1.
func (a Angle) Cmp(b Angle) int { return cmp.Compare(a, b) }

// Less reports whether a's raw byte value is below b's.
func (a Angle) Less(b Angle) bool { return a < b }

// Sin returns the sine of a from the quarter-wave table.
func (a Angle) Sin() float32 {
	i, neg := sinIndex(a)
	if neg {
		return -quarterSine[i]
	}
	return quarterSine[i]
}

// Cos returns the cosine of a from the quarter-wave table.
func (a Angle) Cos() float32 {
	i, neg := cosIndex(a)
	if neg {
		return -quarterSine[i]
	}
	return quarterSine[i]
}

// SinFixed is Sin in 52.12 fixed point.
func (a Angle) SinFixed() fixed.Int52_12 {
	i, neg := sinIndex(a)
	if neg {
		return -quarterSineFixed[i]
	}
	return quarterSineFixed[i]
}

// CosFixed is Cos in 52.12 fixed point.
func (a Angle) CosFixed() fixed.Int52_12 {
	i, neg := cosIndex(a)
	if neg {
		return -quarterSineFixed[i]
	}
	return quarterSineFixed[i]
}

// sinIndex folds a into the first quadrant. The top two bits select the
// quadrant and the low six bits the step within it.
func sinIndex(a Angle) (i Angle, neg bool) {
	switch a & quadrantMask {
	case 0x00:
		return a, false
	case 0x40:
		return quarterTurn - (a & offsetMask), false
	case 0x80:
		return a & offsetMask, true
	default:
		return quarterTurn - (a & offsetMask), true
	}
}

// cosIndex is sinIndex shifted by a quarter turn.
func cosIndex(a Angle) (i Angle, neg bool) {
	switch a & quadrantMask {
	case 0x00:
		// Top bits are clear, so the whole byte is the offset.
		return quarterTurn - a, false
	case 0x40:
		return a & offsetMask, true
	case 0x80:
		return quarterTurn - (a & offsetMask), true
	default:
		return a & offsetMask, false
	}
}

// Radians returns a in radians. The result is one of 256 values in [0, 2π).
func (a Angle) Radians() float32 { return byteToRadian[a] }

// Degrees returns a in degrees, in [0, 360).
func (a Angle) Degrees() float32 { return float32(a) * stepToDegree }

// String implements fmt.Stringer.
func (a Angle) String() string { return fmt.Sprintf("Angle(%d)", uint8(a)) }

// FromRadians returns the binary angle nearest to r. Inputs outside one turn,
// including negative ones, wrap silently. NaN and infinities yield Angle0.
//
// The scale is one full turn (2π) per 256 steps, the exact inverse of
// Radians, so FromRadians(a.Radians()) == a for every Angle. It is not the
// quarter-turn 255/(π/2) ratio some binary-angle code uses, which rounds
// differently.
func FromRadians(r float32) Angle {
	a, ok := quantize(float64(r) * radianToStep)
	if !ok {
		logNonFinite("radians", r)
	}
	return a
}

// FromDegrees returns the binary angle nearest to d, wrapping like FromRadians.
func FromDegrees(d float32) Angle {
	a, ok := quantize(float64(d) * degreeToStep)
	if !ok {
		logNonFinite("degrees", d)
	}
	return a
}

// logNonFinite reports a non-finite conversion input. The Enabled check keeps
// the disabled path free of allocations.
func logNonFinite(unit string, v float32) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("gmath: non-finite "+unit+" folded to zero", slog.Float64(unit, float64(v)))
}

// quantize rounds steps to the nearest integer and wraps it into a byte.
func quantize(steps float64) (Angle, bool) {
	if math.IsNaN(steps) || math.IsInf(steps, 0) {
		return 0, false
	}
	s := math.Mod(math.Round(steps), 256)
	if s < 0 {
		s += 256
	}
	return Angle(s), true
}

// SineTable returns a copy of the quarter-wave sine table.
func SineTable() [65]float32 { return quarterSine }

// RadianTable returns a copy of the angle-to-radian table.
func RadianTable() [256]float32 { return byteToRadian }
