// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp128

import (
	fp "github.com/avdva/fixedpoint"
	"github.com/avdva/fixedpoint/int128"
	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// FromDecimal builds a value from a mantissa/exponent pair, so that the
// result is exactly mant * 10^exp. Returns ErrTooBigMantissa if scaling
// the mantissa up overflows 128 bits, ErrUnsupportedExponent if scaling
// it down would lose non-zero digits.
func FromDecimal[P fp.Precision](mant int128.Int, exp int32) (Value[P], error) {
	if mant.IsZero() {
		return Value[P]{}, nil
	}
	k := int(exp) + fp.DigitsOf[P]()
	neg := mant.Sign() < 0
	hi, lo := mant.Magnitude()
	switch {
	case k >= 39: // exceeds any 128-bit power of ten
		return Value[P]{}, fp.ErrTooBigMantissa
	case k >= 0:
		// scale up in word-sized chunks of at most 10^19
		for k > 0 {
			step := k
			if step > 19 {
				step = 19
			}
			var overflow bool
			if hi, lo, overflow = mu.Mul128By64(hi, lo, mu.Pow10(step)); overflow {
				return Value[P]{}, fp.ErrTooBigMantissa
			}
			k -= step
		}
	case k >= -39:
		for k < 0 {
			step := mu.AbsInt(k)
			if step > 19 {
				step = 19
			}
			var rem uint64
			if hi, lo, rem = mu.Div128By64(hi, lo, mu.Pow10(step)); rem != 0 {
				return Value[P]{}, fp.ErrUnsupportedExponent
			}
			k += step
		}
	default:
		return Value[P]{}, fp.ErrUnsupportedExponent
	}
	b, ok := int128.FromMagnitude(neg, hi, lo)
	if !ok {
		return Value[P]{}, fp.ErrTooBigMantissa
	}
	return Value[P]{bits: b}, nil
}

// ToDecimal returns a mantissa/exponent pair, so that the value is
// exactly mant * 10^exp. Trailing zeros are stripped from the mantissa as
// long as the exponent stays within maxExp. The exponent never goes below
// -P, so for maxExp <= -P the result is (bits, -P) unchanged.
func (v Value[P]) ToDecimal(maxExp int32) (mant int128.Int, exp int32) {
	neg := v.bits.Sign() < 0
	hi, lo := v.bits.Magnitude()
	exp = int32(-fp.DigitsOf[P]())
	for exp < maxExp && hi|lo != 0 {
		qhi, qlo, rem := mu.Div128By64(hi, lo, 10)
		if rem != 0 {
			break
		}
		hi, lo = qhi, qlo
		exp++
	}
	mant, _ = int128.FromMagnitude(neg, hi, lo)
	return mant, exp
}
