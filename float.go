// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"math"
	"math/bits"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// FromFloat64 converts a float deterministically: the result is the
// rounding of the exact real number the float represents to P decimal
// digits, with no intermediate floating-point arithmetic involved.
// Returns ErrNotFinite for infinities and NaNs, ErrTooBigNumber if the
// value does not fit the layout.
func FromFloat64[L Layout, P Precision](f float64) (Value[L, P], error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value[L, P]{}, ErrNotFinite
	}
	if f == 0 {
		return Value[L, P]{}, nil
	}
	mant, exp := mu.FloatParts(f)
	var hi, lo uint64
	if exp >= 0 {
		// bits = mant * 2^exp * 10^P, exact
		var overflow bool
		hi, lo, overflow = mu.Shl128(0, mant, uint(exp))
		if !overflow {
			hi, lo, overflow = mu.Mul128By64(hi, lo, scaleOf[P]())
		}
		if overflow {
			return Value[L, P]{}, ErrTooBigNumber
		}
	} else {
		// bits = mant * 10^P / 2^-exp, rounded; the product is at most
		// 113 bits wide, so it always fits the promoted width.
		hi, lo = bits.Mul64(mant, scaleOf[P]())
		hi, lo = mu.Rsh128Rounded(hi, lo, uint(-exp))
	}
	if hi != 0 {
		return Value[L, P]{}, ErrTooBigNumber
	}
	b, ok := composeBits[L](math.Signbit(f), lo)
	if !ok {
		return Value[L, P]{}, ErrTooBigNumber
	}
	return Value[L, P]{bits: b}, nil
}

// Float64 returns the nearest representable float, accepting the
// accumulated rounding error of the division. The conversion back is not
// guaranteed to be exact, unlike FromFloat64.
func (v Value[L, P]) Float64() float64 {
	return float64(int64(v.bits)) / float64(scaleOf[P]())
}
