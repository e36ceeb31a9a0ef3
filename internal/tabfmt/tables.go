package tabfmt

import "math"

// Steps is the number of binary angle steps in a full turn.
const Steps = 256

// QuarterSine computes sin(i/256 * 2π) for i in [0, 64] in float64 and
// rounds each entry to float32.
func QuarterSine() [Steps/4 + 1]float32 {
	var t [Steps/4 + 1]float32
	for i := range t {
		t[i] = float32(math.Sin(float64(i) / Steps * 2 * math.Pi))
	}
	return t
}

// ByteToRadian computes i/256 * 2π for every angle step.
func ByteToRadian() [Steps]float32 {
	var t [Steps]float32
	for i := range t {
		t[i] = float32(float64(i) / Steps * 2 * math.Pi)
	}
	return t
}

// foldSine evaluates sin(step/256 * 2π) from the quarter-wave table using
// quadrant symmetry. Steps outside one turn wrap.
func foldSine(sine *[Steps/4 + 1]float32, step int) float32 {
	const quarter = Steps / 4
	step &= Steps - 1
	off := step % quarter
	switch step / quarter {
	case 0:
		return sine[off]
	case 1:
		return sine[quarter-off]
	case 2:
		return -sine[off]
	default:
		return -sine[quarter-off]
	}
}
