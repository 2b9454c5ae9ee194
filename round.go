// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

// RoundMode selects the rounding policy applied when the true result of
// an operation is not representable exactly.
type RoundMode int8

const (
	// Floor rounds toward negative infinity.
	Floor RoundMode = -1
	// Nearest rounds to the nearest representable value,
	// ties are resolved away from zero.
	Nearest RoundMode = 0
	// Ceil rounds toward positive infinity.
	Ceil RoundMode = 1
)

func (m RoundMode) String() string {
	switch m {
	case Floor:
		return "floor"
	case Nearest:
		return "nearest"
	case Ceil:
		return "ceil"
	default:
		return "unknown"
	}
}

// roundsAway reports whether a truncated quotient must be adjusted by one
// unit away from zero. neg is the sign of the true result, halfCmp is the
// comparison of the doubled remainder with the divisor. The remainder is
// known to be non-zero.
func roundsAway(mode RoundMode, neg bool, halfCmp int) bool {
	switch mode {
	case Ceil:
		return !neg
	case Floor:
		return neg
	case Nearest:
		return halfCmp >= 0
	default:
		return false
	}
}

// halfCmp64 compares 2*r with d without overflowing, for r < d.
func halfCmp64(r, d uint64) int {
	switch h := d - r; {
	case r > h:
		return 1
	case r < h:
		return -1
	default:
		return 0
	}
}
