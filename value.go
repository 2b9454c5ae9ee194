// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixedpoint implements an exact fixed-point decimal number for
// financial computations: a value is a single scaled integer bits over a
// native storage width, representing bits/10^P for a type-level decimal
// precision P. The package guarantees deterministic rounding, explicit
// overflow and division-by-zero detection, lossless decimal string
// round-tripping, and bit-exact conversion from binary floating point.
//
// Intermediate computations are performed in a wider integer type, so
// that multiplication and division never overflow before the final
// narrowing-and-rounding step: native widths promote through a 128-bit
// path built on math/bits, 128-bit storage (see the fp128 package)
// promotes through the 256-bit integers of the int256 package.
package fixedpoint

import (
	"math/bits"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Value is a fixed-point number over the storage layout L with P decimal
// digits after the point. The represented number is bits/10^P.
//
// Every bit pattern of L is a valid Value; there are no not-a-number or
// denormal states. Values are immutable, copyable, safe to share between
// goroutines, and totally ordered by bits. The zero value is 0.
type Value[L Layout, P Precision] struct {
	bits L
}

// FromBits returns a value with the given raw scaled integer.
func FromBits[L Layout, P Precision](bits L) Value[L, P] {
	return Value[L, P]{bits: bits}
}

// FromInt returns a value equal to the integer n.
func FromInt[L Layout, P Precision](n L) (Value[L, P], error) {
	mag, neg := magOf(n)
	hi, lo := bits.Mul64(mag, scaleOf[P]())
	if hi != 0 {
		return Value[L, P]{}, ErrOverflow
	}
	b, ok := composeBits[L](neg, lo)
	if !ok {
		return Value[L, P]{}, ErrOverflow
	}
	return Value[L, P]{bits: b}, nil
}

// Zero returns the zero value.
func Zero[L Layout, P Precision]() Value[L, P] {
	return Value[L, P]{}
}

// One returns a value equal to 1. It panics if 10^P is not representable
// in L: such an instantiation is a programming error.
func One[L Layout, P Precision]() Value[L, P] {
	v, err := FromInt[L, P](1)
	if err != nil {
		panic("fixedpoint: one is not representable in this layout")
	}
	return v
}

// Max is the maximum possible value.
func Max[L Layout, P Precision]() Value[L, P] {
	return Value[L, P]{bits: maxBits[L]()}
}

// Min is the minimum possible value.
func Min[L Layout, P Precision]() Value[L, P] {
	return Value[L, P]{bits: minBits[L]()}
}

// Epsilon is the smallest positive value, FromBits(1).
func Epsilon[L Layout, P Precision]() Value[L, P] {
	return Value[L, P]{bits: 1}
}

// Bits returns the raw scaled integer.
func (v Value[L, P]) Bits() L {
	return v.bits
}

func (v Value[L, P]) IsZero() bool {
	return v.bits == 0
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Value[L, P]) Sign() int {
	return mu.Int64Sign(int64(v.bits))
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value[L, P]) Cmp(other Value[L, P]) int {
	switch {
	case v.bits > other.bits:
		return 1
	case v.bits < other.bits:
		return -1
	default:
		return 0
	}
}

// Eq returns true, if both values represent the same number.
func (v Value[L, P]) Eq(other Value[L, P]) bool {
	return v.bits == other.bits
}

// Neg returns -v, or ErrOverflow for the minimum value,
// which has no positive counterpart.
func (v Value[L, P]) Neg() (Value[L, P], error) {
	if v.bits == minBits[L]() {
		return Value[L, P]{}, ErrOverflow
	}
	return Value[L, P]{bits: -v.bits}, nil
}

// Abs returns |v|, or ErrOverflow for the minimum value.
func (v Value[L, P]) Abs() (Value[L, P], error) {
	if v.bits >= 0 {
		return v, nil
	}
	return v.Neg()
}

// Add returns v+other, or ErrOverflow.
func (v Value[L, P]) Add(other Value[L, P]) (Value[L, P], error) {
	sum := v.bits + other.bits
	if (v.bits^sum)&(other.bits^sum) < 0 {
		return Value[L, P]{}, ErrOverflow
	}
	return Value[L, P]{bits: sum}, nil
}

// Sub returns v-other, or ErrOverflow.
func (v Value[L, P]) Sub(other Value[L, P]) (Value[L, P], error) {
	diff := v.bits - other.bits
	if (v.bits^other.bits)&(v.bits^diff) < 0 {
		return Value[L, P]{}, ErrOverflow
	}
	return Value[L, P]{bits: diff}, nil
}

// MulInt returns v*n for a plain integer n, or ErrOverflow.
// Multiplying two fixed-point values requires rescaling, see Mul.
func (v Value[L, P]) MulInt(n L) (Value[L, P], error) {
	vmag, vneg := magOf(v.bits)
	nmag, nneg := magOf(n)
	hi, lo := bits.Mul64(vmag, nmag)
	if hi != 0 {
		return Value[L, P]{}, ErrOverflow
	}
	b, ok := composeBits[L](vneg != nneg, lo)
	if !ok {
		return Value[L, P]{}, ErrOverflow
	}
	return Value[L, P]{bits: b}, nil
}

// SaturatingAdd returns v+other, clamping the result to Min or Max on
// overflow. The clamp direction follows the operand signs: an addition
// overflows only when both point at the same bound.
func (v Value[L, P]) SaturatingAdd(other Value[L, P]) Value[L, P] {
	res, err := v.Add(other)
	if err == nil {
		return res
	}
	if v.bits > 0 {
		return Max[L, P]()
	}
	return Min[L, P]()
}

// SaturatingSub returns v-other, clamping the result to Min or Max on overflow.
func (v Value[L, P]) SaturatingSub(other Value[L, P]) Value[L, P] {
	res, err := v.Sub(other)
	if err == nil {
		return res
	}
	// a subtraction overflows only for operands of different signs,
	// the subtrahend points away from the approached bound.
	if other.bits < 0 {
		return Max[L, P]()
	}
	return Min[L, P]()
}

// SaturatingMulInt returns v*n, clamping the result to Min or Max on overflow.
func (v Value[L, P]) SaturatingMulInt(n L) Value[L, P] {
	res, err := v.MulInt(n)
	if err == nil {
		return res
	}
	if (v.bits < 0) != (n < 0) {
		return Min[L, P]()
	}
	return Max[L, P]()
}

// Mul returns v*other rounded per mode, or ErrOverflow.
// The product of the scaled integers is computed in 128 bits and divided
// by 10^P, rounding the quotient.
func (v Value[L, P]) Mul(other Value[L, P], mode RoundMode) (Value[L, P], error) {
	vmag, vneg := magOf(v.bits)
	omag, oneg := magOf(other.bits)
	hi, lo := bits.Mul64(vmag, omag)
	return narrowRounded[L, P](hi, lo, scaleOf[P](), vneg != oneg, mode)
}

// Div returns v/other rounded per mode.
// Returns ErrDivisionByZero for a zero divisor, ErrOverflow if the
// quotient does not fit the layout. The numerator is pre-scaled by 10^P
// in 128 bits, so the scaling itself never overflows.
func (v Value[L, P]) Div(other Value[L, P], mode RoundMode) (Value[L, P], error) {
	if other.bits == 0 {
		return Value[L, P]{}, ErrDivisionByZero
	}
	vmag, vneg := magOf(v.bits)
	omag, oneg := magOf(other.bits)
	hi, lo := bits.Mul64(vmag, scaleOf[P]())
	return narrowRounded[L, P](hi, lo, omag, vneg != oneg, mode)
}

// DivInt returns v/n for a plain integer n, rounded per mode.
// No rescale is needed, the rounding rule applies to bits/n directly.
func (v Value[L, P]) DivInt(n L, mode RoundMode) (Value[L, P], error) {
	if n == 0 {
		return Value[L, P]{}, ErrDivisionByZero
	}
	vmag, vneg := magOf(v.bits)
	nmag, nneg := magOf(n)
	return narrowRounded[L, P](0, vmag, nmag, vneg != nneg, mode)
}

// SaturatingMul returns v*other rounded per mode, clamping the result
// to Min or Max on overflow.
func (v Value[L, P]) SaturatingMul(other Value[L, P], mode RoundMode) Value[L, P] {
	res, err := v.Mul(other, mode)
	if err == nil {
		return res
	}
	if (v.bits < 0) != (other.bits < 0) {
		return Min[L, P]()
	}
	return Max[L, P]()
}

// SaturatingDiv returns v/other rounded per mode, clamping the result to
// Min or Max on overflow. A zero divisor is still reported as
// ErrDivisionByZero: there is no meaningful clamp for it.
func (v Value[L, P]) SaturatingDiv(other Value[L, P], mode RoundMode) (Value[L, P], error) {
	res, err := v.Div(other, mode)
	switch err {
	case nil:
		return res, nil
	case ErrDivisionByZero:
		return Value[L, P]{}, err
	}
	if (v.bits < 0) != (other.bits < 0) {
		return Min[L, P](), nil
	}
	return Max[L, P](), nil
}

// Sqrt returns the square root of v rounded per mode.
// Returns ErrDomain for negative values. The root is computed over
// bits*10^P, which preserves the precision digits:
// sqrt(bits/10^P) = sqrt(bits*10^P)/10^P.
func (v Value[L, P]) Sqrt(mode RoundMode) (Value[L, P], error) {
	if v.bits < 0 {
		return Value[L, P]{}, ErrDomain
	}
	hi, lo := bits.Mul64(uint64(v.bits), scaleOf[P]())
	s := mu.Sqrt128(hi, lo)
	switch ph, pl := bits.Mul64(s, s); mode {
	case Ceil:
		if ph != hi || pl != lo {
			s++ // never wraps: a 123-bit value roots into at most 62 bits
		}
	case Nearest:
		// the ceil root is closer iff the remainder over the floor
		// square exceeds the floor root; ties are impossible.
		rhi, rlo, _ := mu.Sub128(hi, lo, ph, pl)
		if mu.Cmp128(rhi, rlo, 0, s) > 0 {
			s++
		}
	}
	b, ok := composeBits[L](false, s)
	if !ok {
		return Value[L, P]{}, ErrOverflow
	}
	return Value[L, P]{bits: b}, nil
}

// HalfSum returns (v+other)/2 rounded per mode. It never fails: the sum
// is formed in the promoted width, and the halved result always fits.
func (v Value[L, P]) HalfSum(other Value[L, P], mode RoundMode) Value[L, P] {
	a, b := int64(v.bits), int64(other.bits)
	if mu.SameSign(a, b) && a != 0 && b != 0 {
		neg := a < 0
		sum, carry := bits.Add64(mu.MagInt64(a), mu.MagInt64(b), 0)
		q, r := sum>>1|carry<<63, sum&1
		if r != 0 && roundsAway(mode, neg, 0) {
			q++
		}
		halved, _ := composeBits[L](neg, q)
		return Value[L, P]{bits: halved}
	}
	// operands of different signs cannot overflow natively
	sum := v.bits + other.bits
	q, r := sum/2, sum%2
	if r != 0 && roundsAway(mode, sum < 0, 0) {
		if sum < 0 {
			q--
		} else {
			q++
		}
	}
	return Value[L, P]{bits: q}
}

// narrowRounded divides a 128-bit magnitude by a 64-bit divisor, rounds
// the quotient per mode, and narrows the result back into the layout.
// neg is the sign of the true result.
func narrowRounded[L Layout, P Precision](hi, lo, d uint64, neg bool, mode RoundMode) (Value[L, P], error) {
	if hi >= d { // the quotient would not fit even a 64-bit magnitude
		return Value[L, P]{}, ErrOverflow
	}
	q, r := bits.Div64(hi, lo, d)
	if r != 0 && roundsAway(mode, neg, halfCmp64(r, d)) {
		if q == ^uint64(0) {
			return Value[L, P]{}, ErrOverflow
		}
		q++
	}
	b, ok := composeBits[L](neg, q)
	if !ok {
		return Value[L, P]{}, ErrOverflow
	}
	return Value[L, P]{bits: b}, nil
}
