// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"math/bits"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// FromDecimal builds a value from a mantissa/exponent pair, so that the
// result is exactly mant * 10^exp. Returns ErrTooBigMantissa if scaling
// the mantissa up overflows the layout, ErrUnsupportedExponent if scaling
// it down would lose non-zero digits.
func FromDecimal[L Layout, P Precision](mant L, exp int32) (Value[L, P], error) {
	if mant == 0 {
		return Value[L, P]{}, nil
	}
	k := int(exp) + DigitsOf[P]()
	neg := mant < 0
	mag := mu.MagInt64(int64(mant))
	switch {
	case k >= 20: // exceeds any uint64 power of ten
		return Value[L, P]{}, ErrTooBigMantissa
	case k >= 0:
		hi, lo := bits.Mul64(mag, mu.Pow10(k))
		if hi != 0 {
			return Value[L, P]{}, ErrTooBigMantissa
		}
		mag = lo
	case k >= -19:
		pow := mu.Pow10(mu.AbsInt(k))
		if mag%pow != 0 {
			return Value[L, P]{}, ErrUnsupportedExponent
		}
		mag /= pow
	default:
		return Value[L, P]{}, ErrUnsupportedExponent
	}
	b, ok := composeBits[L](neg, mag)
	if !ok {
		return Value[L, P]{}, ErrTooBigMantissa
	}
	return Value[L, P]{bits: b}, nil
}

// ToDecimal returns a mantissa/exponent pair, so that the value is
// exactly mant * 10^exp. Trailing zeros are stripped from the mantissa as
// long as the exponent stays within maxExp. The exponent never goes below
// -P, so for maxExp <= -P the result is (bits, -P) unchanged.
func (v Value[L, P]) ToDecimal(maxExp int32) (mant L, exp int32) {
	neg := v.bits < 0
	mag, exp := mu.TrimMantExp(mu.MagInt64(int64(v.bits)), int32(-DigitsOf[P]()), maxExp)
	mant = L(mag)
	if neg {
		mant = L(-int64(mag))
	}
	return mant, exp
}
