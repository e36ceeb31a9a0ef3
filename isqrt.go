package gmath

import "golang.org/x/exp/constraints"

// isqrt computes floor(sqrt(x)) one binary digit at a time. top must be the
// highest power of four representable in T.
func isqrt[T constraints.Unsigned](x, top T) T {
	var res T
	bit := top
	for bit > x {
		bit >>= 2
	}
	for bit != 0 {
		if x >= res+bit {
			x -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

// ISqrt8 returns floor(sqrt(x)).
func ISqrt8(x uint8) uint8 { return isqrt(x, 1<<6) }

// ISqrt16 returns floor(sqrt(x)).
func ISqrt16(x uint16) uint16 { return isqrt(x, 1<<14) }

// ISqrt32 returns floor(sqrt(x)).
func ISqrt32(x uint32) uint32 { return isqrt(x, 1<<30) }

// ISqrt64 returns floor(sqrt(x)).
func ISqrt64(x uint64) uint64 { return isqrt(x, 1<<62) }
