// Copyright 2020 Aleksandr Demakin. All rights reserved.

package int256

import (
	"github.com/avdva/fixedpoint/int128"
)

// Int is a signed 256-bit integer: a two's complement view over Uint.
// Like Uint, it is an array of 4 uint64 words in little-endian order.
//
// Min has no positive counterpart, the standard two's complement
// asymmetry: negating it panics, and callers must never do so. All
// values produced by a lawful promotion from a narrower storage type
// stay well clear of it.
type Int [4]uint64

// Max is the largest representable Int, 2^255-1.
func Max() Int {
	return Int{^uint64(0), ^uint64(0), ^uint64(0), 1<<63 - 1}
}

// Min is the smallest representable Int, -2^255.
func Min() Int {
	return Int{0, 0, 0, 1 << 63}
}

// FromInt64 returns an Int equal to v.
func FromInt64(v int64) Int {
	ext := uint64(v >> 63)
	return Int{uint64(v), ext, ext, ext}
}

// FromInt128 returns an Int equal to v.
func FromInt128(v int128.Int) Int {
	ext := uint64(v.Hi() >> 63)
	return Int{v.Lo(), uint64(v.Hi()), ext, ext}
}

// FromMagnitude composes an Int from a sign and a magnitude.
// Returns false if the value is out of the signed range.
func FromMagnitude(neg bool, mag Uint) (Int, bool) {
	if mag[3]>>63 == 0 {
		i := Int(mag)
		if neg {
			i = i.negate()
		}
		return i, true
	}
	// only -2^255 survives a magnitude with the top bit set
	if neg && mag == (Uint{0, 0, 0, 1 << 63}) {
		return Min(), true
	}
	return Int{}, false
}

func (i Int) IsZero() bool {
	return i[0]|i[1]|i[2]|i[3] == 0
}

// Sign returns -1 if i < 0, 0 if i == 0, 1 if i > 0.
func (i Int) Sign() int {
	switch {
	case i.IsZero():
		return 0
	case i[3]>>63 == 1:
		return -1
	default:
		return 1
	}
}

// Magnitude returns |i| and the sign flag. It is exact for Min.
func (i Int) Magnitude() (mag Uint, neg bool) {
	if i[3]>>63 == 0 {
		return Uint(i), false
	}
	return Uint(i.negate()), true
}

// negate returns the two's complement of i with wraparound:
// Min negates to itself.
func (i Int) negate() Int {
	diff, _ := (Uint{}).Sub(Uint(i))
	return Int(diff)
}

// Neg returns -i. Panics on Min, whose magnitude exceeds the
// positive range.
func (i Int) Neg() Int {
	if i == Min() {
		panic("int256: negation of the minimum value")
	}
	return i.negate()
}

// Cmp compares two values.
// Returns -1 if i < other, 0 if i == other, 1 if i > other.
// The top word is compared as signed, the rest as unsigned.
func (i Int) Cmp(other Int) int {
	if h1, h2 := int64(i[3]), int64(other[3]); h1 != h2 {
		if h1 < h2 {
			return -1
		}
		return 1
	}
	for idx := 2; idx >= 0; idx-- {
		switch {
		case i[idx] > other[idx]:
			return 1
		case i[idx] < other[idx]:
			return -1
		}
	}
	return 0
}

// Add returns i+other. The result wraps around on overflow: callers
// guarantee the operands came from a lawful promotion, so the true sum
// is always representable.
func (i Int) Add(other Int) Int {
	sum, _ := Uint(i).Add(Uint(other))
	return Int(sum)
}

// Sub returns i-other with the same representability contract as Add.
func (i Int) Sub(other Int) Int {
	diff, _ := Uint(i).Sub(Uint(other))
	return Int(diff)
}

// Mul returns i*other. overflow is set if the product does not fit.
func (i Int) Mul(other Int) (prod Int, overflow bool) {
	xmag, xneg := i.Magnitude()
	ymag, yneg := other.Magnitude()
	pmag, overflow := xmag.Mul(ymag)
	if overflow {
		return Int{}, true
	}
	prod, ok := FromMagnitude(xneg != yneg, pmag)
	return prod, !ok
}

// QuoRem returns the truncated quotient and the remainder of i/other.
// The remainder takes the sign of i. Panics if other is zero, or on
// the single non-representable quotient Min/-1.
func (i Int) QuoRem(other Int) (quo, rem Int) {
	xmag, xneg := i.Magnitude()
	ymag, yneg := other.Magnitude()
	qmag, rmag := xmag.QuoRem(ymag)
	quo, ok := FromMagnitude(xneg != yneg, qmag)
	if !ok {
		panic("int256: quotient overflow")
	}
	rem, _ = FromMagnitude(xneg, rmag)
	return quo, rem
}

// Int128 returns i as an int128.Int, if it fits.
func (i Int) Int128() (int128.Int, bool) {
	ext := uint64(int64(i[1]) >> 63)
	if i[2] != ext || i[3] != ext {
		return int128.Int{}, false
	}
	return int128.New(int64(i[1]), i[0]), true
}

// Int64 returns i as an int64, if it fits.
func (i Int) Int64() (int64, bool) {
	ext := uint64(int64(i[0]) >> 63)
	if i[1] != ext || i[2] != ext || i[3] != ext {
		return 0, false
	}
	return int64(i[0]), true
}

// SqrtFloor returns the largest s, such that s*s <= i.
// Panics if i is negative: the domain check belongs to the caller.
func (i Int) SqrtFloor() Int {
	mag, neg := i.Magnitude()
	if neg {
		panic("int256: square root of a negative value")
	}
	return Int(mag.Sqrt())
}

// SqrtCeil returns the smallest s, such that s*s >= i.
func (i Int) SqrtCeil() Int {
	mag, neg := i.Magnitude()
	if neg {
		panic("int256: square root of a negative value")
	}
	s := mag.Sqrt()
	if sq, _ := s.Mul(s); sq.Cmp(mag) < 0 {
		s, _ = s.Add(FromUint64(1))
	}
	return Int(s)
}

// SqrtNearest returns the integer closest to the real square root of i.
// The candidates are the floor and the ceil roots, and the closer one is
// found by comparing the remainder over the floor square with the floor
// root itself: ties are impossible, as floor²+ceil² is odd.
func (i Int) SqrtNearest() Int {
	mag, neg := i.Magnitude()
	if neg {
		panic("int256: square root of a negative value")
	}
	s := mag.Sqrt()
	sq, _ := s.Mul(s)
	rem, _ := mag.Sub(sq)
	if rem.Cmp(s) > 0 {
		s, _ = s.Add(FromUint64(1))
	}
	return Int(s)
}

// String returns the decimal representation of i.
func (i Int) String() string {
	mag, neg := i.Magnitude()
	if neg {
		return "-" + mag.String()
	}
	return mag.String()
}
