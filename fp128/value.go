// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fp128 implements the fixed-point decimal number over a 128-bit
// storage. The API mirrors the root package, with int128.Int in place of
// the native layouts. Intermediate products and scaled numerators exceed
// 128 bits, so arithmetic promotes through the 256-bit integers of the
// int256 package.
package fp128

import (
	fp "github.com/avdva/fixedpoint"
	"github.com/avdva/fixedpoint/int128"
	"github.com/avdva/fixedpoint/int256"
	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Value is a fixed-point number with 128 storage bits and P decimal
// digits after the point. The represented number is bits/10^P.
//
// Every bit pattern is a valid Value; there are no not-a-number states.
// Values are immutable, copyable, and totally ordered by bits.
// The zero value is 0.
type Value[P fp.Precision] struct {
	bits int128.Int
}

// FromBits returns a value with the given raw scaled integer.
func FromBits[P fp.Precision](bits int128.Int) Value[P] {
	return Value[P]{bits: bits}
}

// FromInt64 returns a value equal to the integer n. It cannot fail:
// the scaled result of any int64 fits 128 bits at every precision.
func FromInt64[P fp.Precision](n int64) Value[P] {
	neg := n < 0
	hi, lo := bits128Scale[P](mu.MagInt64(n))
	v, _ := int128.FromMagnitude(neg, hi, lo)
	return Value[P]{bits: v}
}

// Zero returns the zero value.
func Zero[P fp.Precision]() Value[P] {
	return Value[P]{}
}

// One returns a value equal to 1.
func One[P fp.Precision]() Value[P] {
	return FromInt64[P](1)
}

// Max is the maximum possible value.
func Max[P fp.Precision]() Value[P] {
	return Value[P]{bits: int128.Max()}
}

// Min is the minimum possible value.
func Min[P fp.Precision]() Value[P] {
	return Value[P]{bits: int128.Min()}
}

// Epsilon is the smallest positive value, FromBits(1).
func Epsilon[P fp.Precision]() Value[P] {
	return Value[P]{bits: int128.New(0, 1)}
}

// Bits returns the raw scaled integer.
func (v Value[P]) Bits() int128.Int {
	return v.bits
}

func (v Value[P]) IsZero() bool {
	return v.bits.IsZero()
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Value[P]) Sign() int {
	return v.bits.Sign()
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value[P]) Cmp(other Value[P]) int {
	return v.bits.Cmp(other.bits)
}

// Eq returns true, if both values represent the same number.
func (v Value[P]) Eq(other Value[P]) bool {
	return v.bits == other.bits
}

// Neg returns -v, or ErrOverflow for the minimum value,
// which has no positive counterpart.
func (v Value[P]) Neg() (Value[P], error) {
	if v.bits == int128.Min() {
		return Value[P]{}, fp.ErrOverflow
	}
	return Value[P]{bits: v.bits.Neg()}, nil
}

// Abs returns |v|, or ErrOverflow for the minimum value.
func (v Value[P]) Abs() (Value[P], error) {
	if v.bits.Sign() >= 0 {
		return v, nil
	}
	return v.Neg()
}

// Add returns v+other, or ErrOverflow.
func (v Value[P]) Add(other Value[P]) (Value[P], error) {
	sum := v.bits.Add(other.bits)
	if (v.bits.Hi()^sum.Hi())&(other.bits.Hi()^sum.Hi()) < 0 {
		return Value[P]{}, fp.ErrOverflow
	}
	return Value[P]{bits: sum}, nil
}

// Sub returns v-other, or ErrOverflow.
func (v Value[P]) Sub(other Value[P]) (Value[P], error) {
	diff := v.bits.Sub(other.bits)
	if (v.bits.Hi()^other.bits.Hi())&(v.bits.Hi()^diff.Hi()) < 0 {
		return Value[P]{}, fp.ErrOverflow
	}
	return Value[P]{bits: diff}, nil
}

// MulInt returns v*n for a plain integer n, or ErrOverflow.
// Multiplying two fixed-point values requires rescaling, see Mul.
func (v Value[P]) MulInt(n int64) (Value[P], error) {
	vhi, vlo := v.bits.Magnitude()
	phi, plo, overflow := mu.Mul128By64(vhi, vlo, mu.MagInt64(n))
	if overflow {
		return Value[P]{}, fp.ErrOverflow
	}
	b, ok := int128.FromMagnitude(v.bits.Sign() < 0 != (n < 0), phi, plo)
	if !ok {
		return Value[P]{}, fp.ErrOverflow
	}
	return Value[P]{bits: b}, nil
}

// SaturatingAdd returns v+other, clamping the result to Min or Max on
// overflow. The clamp direction follows the operand signs: an addition
// overflows only when both point at the same bound.
func (v Value[P]) SaturatingAdd(other Value[P]) Value[P] {
	res, err := v.Add(other)
	if err == nil {
		return res
	}
	if v.bits.Sign() > 0 {
		return Max[P]()
	}
	return Min[P]()
}

// SaturatingSub returns v-other, clamping the result to Min or Max on overflow.
func (v Value[P]) SaturatingSub(other Value[P]) Value[P] {
	res, err := v.Sub(other)
	if err == nil {
		return res
	}
	// a subtraction overflows only for operands of different signs,
	// the subtrahend points away from the approached bound.
	if other.bits.Sign() < 0 {
		return Max[P]()
	}
	return Min[P]()
}

// SaturatingMulInt returns v*n, clamping the result to Min or Max on overflow.
func (v Value[P]) SaturatingMulInt(n int64) Value[P] {
	res, err := v.MulInt(n)
	if err == nil {
		return res
	}
	if v.bits.Sign() < 0 != (n < 0) {
		return Min[P]()
	}
	return Max[P]()
}

// Mul returns v*other rounded per mode, or ErrOverflow.
// The product of the scaled integers is computed in 256 bits and divided
// by 10^P, rounding the quotient.
func (v Value[P]) Mul(other Value[P], mode fp.RoundMode) (Value[P], error) {
	vmag := magnitude256(v.bits)
	omag := magnitude256(other.bits)
	prod, _ := vmag.Mul(omag) // 128x128 bits always fit
	neg := v.bits.Sign() < 0 != (other.bits.Sign() < 0)
	return narrowRounded[P](prod, int256.FromUint64(scaleOf[P]()), neg, mode)
}

// Div returns v/other rounded per mode.
// Returns ErrDivisionByZero for a zero divisor, ErrOverflow if the
// quotient does not fit the storage. The numerator is pre-scaled by 10^P
// in 256 bits, so the scaling itself never overflows.
func (v Value[P]) Div(other Value[P], mode fp.RoundMode) (Value[P], error) {
	if other.bits.IsZero() {
		return Value[P]{}, fp.ErrDivisionByZero
	}
	num, _ := magnitude256(v.bits).Mul(int256.FromUint64(scaleOf[P]()))
	neg := v.bits.Sign() < 0 != (other.bits.Sign() < 0)
	return narrowRounded[P](num, magnitude256(other.bits), neg, mode)
}

// DivInt returns v/n for a plain integer n, rounded per mode.
// No rescale is needed, the rounding rule applies to bits/n directly.
func (v Value[P]) DivInt(n int64, mode fp.RoundMode) (Value[P], error) {
	if n == 0 {
		return Value[P]{}, fp.ErrDivisionByZero
	}
	neg := v.bits.Sign() < 0 != (n < 0)
	return narrowRounded[P](magnitude256(v.bits), int256.FromUint64(mu.MagInt64(n)), neg, mode)
}

// SaturatingMul returns v*other rounded per mode, clamping the result
// to Min or Max on overflow.
func (v Value[P]) SaturatingMul(other Value[P], mode fp.RoundMode) Value[P] {
	res, err := v.Mul(other, mode)
	if err == nil {
		return res
	}
	if v.bits.Sign() < 0 != (other.bits.Sign() < 0) {
		return Min[P]()
	}
	return Max[P]()
}

// SaturatingDiv returns v/other rounded per mode, clamping the result to
// Min or Max on overflow. A zero divisor is still reported as
// ErrDivisionByZero: there is no meaningful clamp for it.
func (v Value[P]) SaturatingDiv(other Value[P], mode fp.RoundMode) (Value[P], error) {
	res, err := v.Div(other, mode)
	switch err {
	case nil:
		return res, nil
	case fp.ErrDivisionByZero:
		return Value[P]{}, err
	}
	if v.bits.Sign() < 0 != (other.bits.Sign() < 0) {
		return Min[P](), nil
	}
	return Max[P](), nil
}

// Sqrt returns the square root of v rounded per mode.
// Returns ErrDomain for negative values. The root is computed over
// bits*10^P, which preserves the precision digits:
// sqrt(bits/10^P) = sqrt(bits*10^P)/10^P.
func (v Value[P]) Sqrt(mode fp.RoundMode) (Value[P], error) {
	if v.bits.Sign() < 0 {
		return Value[P]{}, fp.ErrDomain
	}
	mag, _ := magnitude256(v.bits).Mul(int256.FromUint64(scaleOf[P]()))
	s := mag.Sqrt()
	switch sq, _ := s.Mul(s); mode {
	case fp.Ceil:
		if sq.Cmp(mag) < 0 {
			s, _ = s.Add(int256.FromUint64(1))
		}
	case fp.Nearest:
		// the ceil root is closer iff the remainder over the floor
		// square exceeds the floor root; ties are impossible.
		rem, _ := mag.Sub(sq)
		if rem.Cmp(s) > 0 {
			s, _ = s.Add(int256.FromUint64(1))
		}
	}
	// a root of a 188-bit radicand fits 94 bits
	hi, lo, _ := s.To128()
	b, _ := int128.FromMagnitude(false, hi, lo)
	return Value[P]{bits: b}, nil
}

// HalfSum returns (v+other)/2 rounded per mode. It never fails: the sum
// is formed in the promoted width, and the halved result always fits.
func (v Value[P]) HalfSum(other Value[P], mode fp.RoundMode) Value[P] {
	sum := int256.FromInt128(v.bits).Add(int256.FromInt128(other.bits))
	mag, neg := sum.Magnitude()
	q := mag.Rsh(1)
	if mag.Uint64()&1 != 0 && roundsAway(mode, neg, 0) {
		q, _ = q.Add(int256.FromUint64(1))
	}
	hi, lo, _ := q.To128()
	halved, _ := int128.FromMagnitude(neg, hi, lo)
	return Value[P]{bits: halved}
}

// narrowRounded divides a 256-bit magnitude by a divisor, rounds the
// quotient per mode, and narrows the result back into 128 bits.
// neg is the sign of the true result.
func narrowRounded[P fp.Precision](num, den int256.Uint, neg bool, mode fp.RoundMode) (Value[P], error) {
	q, r := num.QuoRem(den)
	if !r.IsZero() && roundsAway(mode, neg, halfCmp256(r, den)) {
		q, _ = q.Add(int256.FromUint64(1))
	}
	hi, lo, ok := q.To128()
	if !ok {
		return Value[P]{}, fp.ErrOverflow
	}
	b, ok := int128.FromMagnitude(neg, hi, lo)
	if !ok {
		return Value[P]{}, fp.ErrOverflow
	}
	return Value[P]{bits: b}, nil
}

// roundsAway reports whether a truncated quotient must be adjusted by one
// unit away from zero. neg is the sign of the true result, halfCmp is the
// comparison of the doubled remainder with the divisor. The remainder is
// known to be non-zero.
func roundsAway(mode fp.RoundMode, neg bool, halfCmp int) bool {
	switch mode {
	case fp.Ceil:
		return !neg
	case fp.Floor:
		return neg
	case fp.Nearest:
		return halfCmp >= 0
	default:
		return false
	}
}

// halfCmp256 compares 2*r with d without overflowing, for r < d.
func halfCmp256(r, d int256.Uint) int {
	h, _ := d.Sub(r)
	return r.Cmp(h)
}

// magnitude256 widens |i| into an unsigned 256-bit integer.
func magnitude256(i int128.Int) int256.Uint {
	hi, lo := i.Magnitude()
	return int256.From128(hi, lo)
}

func scaleOf[P fp.Precision]() uint64 {
	return mu.Pow10(fp.DigitsOf[P]())
}

// bits128Scale returns mag*10^P as an unsigned 128-bit pair; exact for
// any 64-bit magnitude at any supported precision.
func bits128Scale[P fp.Precision](mag uint64) (hi, lo uint64) {
	hi, lo, _ = mu.Mul128By64(0, mag, scaleOf[P]())
	return hi, lo
}
