// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp128

import (
	"math"
	"math/bits"

	fp "github.com/avdva/fixedpoint"
	"github.com/avdva/fixedpoint/int128"
	"github.com/avdva/fixedpoint/int256"
	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// FromFloat64 converts a float deterministically: the result is the
// rounding of the exact real number the float represents to P decimal
// digits, with no intermediate floating-point arithmetic involved.
// Returns ErrNotFinite for infinities and NaNs, ErrTooBigNumber if the
// value does not fit 128 bits.
func FromFloat64[P fp.Precision](f float64) (Value[P], error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value[P]{}, fp.ErrNotFinite
	}
	if f == 0 {
		return Value[P]{}, nil
	}
	mant, exp := mu.FloatParts(f)
	var hi, lo uint64
	if exp >= 0 {
		// bits = mant * 2^exp * 10^P, exact; anything wider than
		// 256 bits is far out of the storage range already.
		if exp > 256-53 {
			return Value[P]{}, fp.ErrTooBigNumber
		}
		mag, overflow := int256.FromUint64(mant).Lsh(uint(exp)).Mul(int256.FromUint64(scaleOf[P]()))
		if overflow {
			return Value[P]{}, fp.ErrTooBigNumber
		}
		var ok bool
		if hi, lo, ok = mag.To128(); !ok {
			return Value[P]{}, fp.ErrTooBigNumber
		}
	} else {
		// bits = mant * 10^P / 2^-exp, rounded; the product is at most
		// 113 bits wide, so it fits the pair exactly.
		hi, lo = bits.Mul64(mant, scaleOf[P]())
		hi, lo = mu.Rsh128Rounded(hi, lo, uint(-exp))
	}
	b, ok := int128.FromMagnitude(math.Signbit(f), hi, lo)
	if !ok {
		return Value[P]{}, fp.ErrTooBigNumber
	}
	return Value[P]{bits: b}, nil
}

// Float64 returns the nearest representable float, accepting the
// accumulated rounding error of the division. The conversion back is not
// guaranteed to be exact, unlike FromFloat64.
func (v Value[P]) Float64() float64 {
	return v.bits.Float64() / float64(scaleOf[P]())
}
