// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package int128 implements a signed 128-bit integer, used as a storage
// type for 128-bit fixed-point values.
package int128

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Int is a signed 128-bit integer in two's complement representation.
// The zero value is ready to use and represents 0.
type Int struct {
	hi int64
	lo uint64
}

// New returns an Int composed of the given high and low words.
func New(hi int64, lo uint64) Int {
	return Int{hi: hi, lo: lo}
}

// FromInt64 returns an Int equal to v.
func FromInt64(v int64) Int {
	return Int{hi: v >> 63, lo: uint64(v)}
}

// Max is the largest representable Int, 2^127-1.
func Max() Int {
	return Int{hi: math.MaxInt64, lo: math.MaxUint64}
}

// Min is the smallest representable Int, -2^127.
// Its negation is not representable.
func Min() Int {
	return Int{hi: math.MinInt64, lo: 0}
}

// Hi returns the high 64 bits of i.
func (i Int) Hi() int64 { return i.hi }

// Lo returns the low 64 bits of i.
func (i Int) Lo() uint64 { return i.lo }

func (i Int) IsZero() bool {
	return i.hi == 0 && i.lo == 0
}

// Sign returns -1 if i < 0, 0 if i == 0, 1 if i > 0.
func (i Int) Sign() int {
	switch {
	case i.hi == 0 && i.lo == 0:
		return 0
	case i.hi < 0:
		return -1
	default:
		return 1
	}
}

// Cmp compares two values.
// Returns -1 if i < other, 0 if i == other, 1 if i > other.
func (i Int) Cmp(other Int) int {
	switch {
	case i.hi > other.hi:
		return 1
	case i.hi < other.hi:
		return -1
	case i.lo > other.lo:
		return 1
	case i.lo < other.lo:
		return -1
	default:
		return 0
	}
}

// Add returns i+other with wraparound on overflow.
func (i Int) Add(other Int) Int {
	lo, carry := bits.Add64(i.lo, other.lo, 0)
	return Int{hi: i.hi + other.hi + int64(carry), lo: lo}
}

// Sub returns i-other with wraparound on overflow.
func (i Int) Sub(other Int) Int {
	lo, borrow := bits.Sub64(i.lo, other.lo, 0)
	return Int{hi: i.hi - other.hi - int64(borrow), lo: lo}
}

// Neg returns -i. Min negates to itself, the caller must not rely
// on the result for it.
func (i Int) Neg() Int {
	lo, carry := bits.Add64(^i.lo, 1, 0)
	return Int{hi: ^i.hi + int64(carry), lo: lo}
}

// Magnitude returns |i| as an unsigned 128-bit (hi, lo) pair.
// It is exact for Min.
func (i Int) Magnitude() (hi, lo uint64) {
	if i.hi >= 0 {
		return uint64(i.hi), i.lo
	}
	n := i.Neg()
	return uint64(n.hi), n.lo
}

// FromMagnitude composes an Int from a sign and an unsigned magnitude.
// Returns false if the value is out of the signed range.
func FromMagnitude(neg bool, hi, lo uint64) (Int, bool) {
	if !neg {
		if hi > math.MaxInt64 {
			return Int{}, false
		}
		return Int{hi: int64(hi), lo: lo}, true
	}
	if hi > 1<<63 || hi == 1<<63 && lo != 0 {
		return Int{}, false
	}
	return Int{hi: int64(hi), lo: lo}.Neg(), true
}

// Int64 returns i as an int64, if it fits.
func (i Int) Int64() (int64, bool) {
	if i.hi != int64(i.lo)>>63 {
		return 0, false
	}
	return int64(i.lo), true
}

// Float64 returns the nearest float64 to i.
func (i Int) Float64() float64 {
	hi, lo := i.Magnitude()
	f := float64(hi)*(1<<64) + float64(lo)
	if i.hi < 0 {
		return -f
	}
	return f
}

// String returns the decimal representation of i.
func (i Int) String() string {
	hi, lo := i.Magnitude()
	s := FormatMagnitude(hi, lo)
	if i.Sign() < 0 {
		return "-" + s
	}
	return s
}

// GoString returns debug string representation.
func (i Int) GoString() string {
	return i.String() + fmt.Sprintf(" {%v, %v}", i.hi, i.lo)
}

const decChunk = 10000000000000000000 // 1e19, the largest power of ten in a uint64

// FormatMagnitude returns the decimal representation of an unsigned
// 128-bit (hi, lo) value.
func FormatMagnitude(hi, lo uint64) string {
	if hi == 0 {
		return strconv.FormatUint(lo, 10)
	}
	// peel the low 19 digits off until the rest fits a single word.
	q1hi, q1lo, r1 := mu.Div128By64(hi, lo, decChunk)
	if q1hi == 0 && q1lo < decChunk {
		return fmt.Sprintf("%d%019d", q1lo, r1)
	}
	_, q2lo, r2 := mu.Div128By64(q1hi, q1lo, decChunk)
	return fmt.Sprintf("%d%019d%019d", q2lo, r2, r1)
}
