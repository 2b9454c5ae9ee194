// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package int256 implements signed 256-bit integers over an unsigned
// magnitude type. It is the terminal promotion target for fixed-point
// arithmetic on 128-bit storage.
package int256

import (
	"fmt"
	"math/bits"
	"strconv"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Uint is an unsigned 256-bit integer as an array of 4 uint64 words,
// in little-endian order, so that Uint[3] is the most significant one.
// The layout and the division code follow github.com/holiman/uint256.
type Uint [4]uint64

// FromUint64 returns a Uint equal to v.
func FromUint64(v uint64) Uint {
	return Uint{v, 0, 0, 0}
}

// From128 returns a Uint composed of an unsigned 128-bit (hi, lo) pair.
func From128(hi, lo uint64) Uint {
	return Uint{lo, hi, 0, 0}
}

func (u Uint) IsZero() bool {
	return u[0]|u[1]|u[2]|u[3] == 0
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool {
	return u[1]|u[2]|u[3] == 0
}

// Uint64 returns the lowest word of u.
func (u Uint) Uint64() uint64 {
	return u[0]
}

// To128 returns u as an unsigned 128-bit (hi, lo) pair, if it fits.
func (u Uint) To128() (hi, lo uint64, ok bool) {
	return u[1], u[0], u[2]|u[3] == 0
}

// Cmp compares two values.
// Returns -1 if u < other, 0 if u == other, 1 if u > other.
func (u Uint) Cmp(other Uint) int {
	for i := len(u) - 1; i >= 0; i-- {
		switch {
		case u[i] > other[i]:
			return 1
		case u[i] < other[i]:
			return -1
		}
	}
	return 0
}

// Add returns u+other and a carry out of the highest word.
func (u Uint) Add(other Uint) (sum Uint, carry uint64) {
	sum[0], carry = bits.Add64(u[0], other[0], 0)
	sum[1], carry = bits.Add64(u[1], other[1], carry)
	sum[2], carry = bits.Add64(u[2], other[2], carry)
	sum[3], carry = bits.Add64(u[3], other[3], carry)
	return sum, carry
}

// Sub returns u-other and a borrow out of the highest word.
func (u Uint) Sub(other Uint) (diff Uint, borrow uint64) {
	diff[0], borrow = bits.Sub64(u[0], other[0], 0)
	diff[1], borrow = bits.Sub64(u[1], other[1], borrow)
	diff[2], borrow = bits.Sub64(u[2], other[2], borrow)
	diff[3], borrow = bits.Sub64(u[3], other[3], borrow)
	return diff, borrow
}

// Mul returns u*other. overflow is set if the true product
// does not fit 256 bits.
func (u Uint) Mul(other Uint) (prod Uint, overflow bool) {
	p := umul(&u, &other)
	copy(prod[:], p[:4])
	return prod, p[4]|p[5]|p[6]|p[7] != 0
}

// Lsh returns u shifted left by n bits. Bits shifted out are lost.
func (u Uint) Lsh(n uint) Uint {
	if n >= 256 {
		return Uint{}
	}
	for n >= 64 {
		u[3], u[2], u[1], u[0] = u[2], u[1], u[0], 0
		n -= 64
	}
	if n == 0 {
		return u
	}
	u[3] = u[3]<<n | u[2]>>(64-n)
	u[2] = u[2]<<n | u[1]>>(64-n)
	u[1] = u[1]<<n | u[0]>>(64-n)
	u[0] <<= n
	return u
}

// Rsh returns u shifted right by n bits.
func (u Uint) Rsh(n uint) Uint {
	if n >= 256 {
		return Uint{}
	}
	for n >= 64 {
		u[0], u[1], u[2], u[3] = u[1], u[2], u[3], 0
		n -= 64
	}
	if n == 0 {
		return u
	}
	u[0] = u[0]>>n | u[1]<<(64-n)
	u[1] = u[1]>>n | u[2]<<(64-n)
	u[2] = u[2]>>n | u[3]<<(64-n)
	u[3] >>= n
	return u
}

// QuoRem returns the quotient and the remainder of u/other.
// Panics if other is zero.
func (u Uint) QuoRem(other Uint) (quo, rem Uint) {
	if other.IsZero() {
		panic("division by zero")
	}
	switch u.Cmp(other) {
	case -1:
		return Uint{}, u
	case 0:
		return FromUint64(1), Uint{}
	}
	if u.IsUint64() { // implies other fits a word as well
		return FromUint64(u[0] / other[0]), FromUint64(u[0] % other[0])
	}
	rem = udivrem(quo[:], u[:], &other)
	return quo, rem
}

// Sqrt returns the largest s, such that s*s <= u.
// Values fitting 128 bits take a fast float-estimate path, wider ones
// recurse on u>>2 and verify the two candidate roots by squaring back.
func (u Uint) Sqrt() Uint {
	if u[2]|u[3] == 0 {
		return FromUint64(mu.Sqrt128(u[1], u[0]))
	}
	lo := u.Rsh(2).Sqrt().Lsh(1)
	hi, _ := lo.Add(FromUint64(1))
	if sq, overflow := hi.Mul(hi); !overflow && sq.Cmp(u) <= 0 {
		return hi
	}
	return lo
}

// String returns the decimal representation of u.
func (u Uint) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u[0], 10)
	}
	// 1e19 is the largest power of ten in a uint64; the remainder of a
	// division by it is the next 19-digit chunk of the output.
	var chunks []uint64
	div := FromUint64(10000000000000000000)
	for !u.IsZero() {
		var rem Uint
		u, rem = u.QuoRem(div)
		chunks = append(chunks, rem[0])
	}
	s := strconv.FormatUint(chunks[len(chunks)-1], 10)
	for i := len(chunks) - 2; i >= 0; i-- {
		s += fmt.Sprintf("%019d", chunks[i])
	}
	return s
}

// umul computes the full 256 x 256 -> 512 multiplication.
func umul(x, y *Uint) [8]uint64 {
	var (
		res                           [8]uint64
		carry, carry4, carry5, carry6 uint64
		res1, res2, res3, res4, res5  uint64
	)

	carry, res[0] = bits.Mul64(x[0], y[0])
	carry, res1 = umulHop(carry, x[1], y[0])
	carry, res2 = umulHop(carry, x[2], y[0])
	carry4, res3 = umulHop(carry, x[3], y[0])

	carry, res[1] = umulHop(res1, x[0], y[1])
	carry, res2 = umulStep(res2, x[1], y[1], carry)
	carry, res3 = umulStep(res3, x[2], y[1], carry)
	carry5, res4 = umulStep(carry4, x[3], y[1], carry)

	carry, res[2] = umulHop(res2, x[0], y[2])
	carry, res3 = umulStep(res3, x[1], y[2], carry)
	carry, res4 = umulStep(res4, x[2], y[2], carry)
	carry6, res5 = umulStep(carry5, x[3], y[2], carry)

	carry, res[3] = umulHop(res3, x[0], y[3])
	carry, res[4] = umulStep(res4, x[1], y[3], carry)
	carry, res[5] = umulStep(res5, x[2], y[3], carry)
	res[7], res[6] = umulStep(carry6, x[3], y[3], carry)

	return res
}

// umulStep computes (hi * 2^64 + lo) = z + (x * y) + carry.
func umulStep(z, x, y, carry uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	lo, carry = bits.Add64(lo, carry, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}

// umulHop computes (hi * 2^64 + lo) = z + (x * y).
func umulHop(z, x, y uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	lo, carry := bits.Add64(lo, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}

// addTo computes x += y.
// Requires len(x) >= len(y).
func addTo(x, y []uint64) uint64 {
	var carry uint64
	for i := 0; i < len(y); i++ {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// subMulTo computes x -= y * multiplier.
// Requires len(x) >= len(y).
func subMulTo(x, y []uint64, multiplier uint64) uint64 {
	var borrow uint64
	for i := 0; i < len(y); i++ {
		s, carry1 := bits.Sub64(x[i], borrow, 0)
		ph, pl := bits.Mul64(y[i], multiplier)
		t, carry2 := bits.Sub64(s, pl, 0)
		x[i] = t
		borrow = ph + carry1 + carry2
	}
	return borrow
}

// udivremBy1 divides u by a single normalized word d and produces both
// the quotient and the remainder. The quotient is stored in quot.
func udivremBy1(quot, u []uint64, d uint64) (rem uint64) {
	reciprocal := reciprocal2by1(d)
	rem = u[len(u)-1] // Set the top word as remainder.
	for j := len(u) - 2; j >= 0; j-- {
		quot[j], rem = udivrem2by1(rem, u[j], d, reciprocal)
	}
	return rem
}

// udivremKnuth implements the division of u by a normalized multiple
// word d from Knuth's division algorithm.
// The quotient is stored in quot - len(u)-len(d) words.
// Updates u to contain the remainder - len(d) words.
func udivremKnuth(quot, u, d []uint64) {
	dh := d[len(d)-1]
	dl := d[len(d)-2]
	reciprocal := reciprocal2by1(dh)

	for j := len(u) - len(d) - 1; j >= 0; j-- {
		u2 := u[j+len(d)]
		u1 := u[j+len(d)-1]
		u0 := u[j+len(d)-2]

		var qhat, rhat uint64
		if u2 >= dh { // Division overflows.
			qhat = ^uint64(0)
		} else {
			qhat, rhat = udivrem2by1(u2, u1, dh, reciprocal)
			ph, pl := bits.Mul64(qhat, dl)
			if ph > rhat || ph == rhat && pl > u0 {
				qhat--
			}
		}

		// Multiply and subtract.
		borrow := subMulTo(u[j:], d, qhat)
		u[j+len(d)] = u2 - borrow
		if u2 < borrow { // Too much subtracted, add back.
			qhat--
			u[j+len(d)] += addTo(u[j:], d)
		}

		quot[j] = qhat // Store quotient digit.
	}
}

// udivrem divides u by d and produces both the quotient and the remainder.
// The quotient is stored in quot - len(u)-len(d)+1 words.
// It loosely follows Knuth's division algorithm (sometimes referenced as
// "schoolbook" division) using 64-bit words.
// See Knuth, Volume 2, section 4.3.1, Algorithm D.
func udivrem(quot, u []uint64, d *Uint) (rem Uint) {
	var dLen int
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] != 0 {
			dLen = i + 1
			break
		}
	}

	shift := uint(bits.LeadingZeros64(d[dLen-1]))

	var dnStorage Uint
	dn := dnStorage[:dLen]
	for i := dLen - 1; i > 0; i-- {
		dn[i] = d[i]<<shift | d[i-1]>>(64-shift)
	}
	dn[0] = d[0] << shift

	var uLen int
	for i := len(u) - 1; i >= 0; i-- {
		if u[i] != 0 {
			uLen = i + 1
			break
		}
	}
	if uLen < dLen {
		copy(rem[:], u)
		return rem
	}

	var unStorage [5]uint64
	un := unStorage[:uLen+1]
	un[uLen] = u[uLen-1] >> (64 - shift)
	for i := uLen - 1; i > 0; i-- {
		un[i] = u[i]<<shift | u[i-1]>>(64-shift)
	}
	un[0] = u[0] << shift

	if dLen == 1 {
		r := udivremBy1(quot, un, dn[0])
		rem[0] = r >> shift
		return rem
	}

	udivremKnuth(quot, un, dn)

	for i := 0; i < dLen-1; i++ {
		rem[i] = un[i]>>shift | un[i+1]<<(64-shift)
	}
	rem[dLen-1] = un[dLen-1] >> shift

	return rem
}

// reciprocal2by1 computes <^d, ^0> / d.
func reciprocal2by1(d uint64) uint64 {
	reciprocal, _ := bits.Div64(^d, ^uint64(0), d)
	return reciprocal
}

// udivrem2by1 divides <uh, ul> / d and produces both the quotient and the
// remainder. It uses the provided d's reciprocal.
// Implementation ported from https://github.com/chfast/intx and is based on
// "Improved division by invariant integers", Algorithm 4.
func udivrem2by1(uh, ul, d, reciprocal uint64) (quot, rem uint64) {
	qh, ql := bits.Mul64(reciprocal, uh)
	ql, carry := bits.Add64(ql, ul, 0)
	qh, _ = bits.Add64(qh, uh, carry)
	qh++

	r := ul - qh*d

	if r > ql {
		qh--
		r += d
	}

	if r >= d {
		qh++
		r -= d
	}

	return qh, r
}
