// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"unsafe"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Layout is the set of native storage widths. Arithmetic on any of them
// promotes through a single 128-bit path: a product, or a numerator
// pre-scaled by 10^P, of two in-range values always fits 128 bits.
type Layout interface {
	~int8 | ~int16 | ~int32 | ~int64
}

func layoutBits[L Layout]() uint {
	var l L
	return uint(unsafe.Sizeof(l)) * 8
}

// minBits returns the smallest representable bits value, -2^(w-1).
func minBits[L Layout]() L {
	return L(1) << (layoutBits[L]() - 1)
}

// maxBits returns the largest representable bits value, 2^(w-1)-1.
func maxBits[L Layout]() L {
	return ^minBits[L]()
}

// maxMag returns the largest representable magnitude for the given sign:
// the negative range of a two's complement type is longer by one.
func maxMag[L Layout](neg bool) uint64 {
	m := uint64(maxBits[L]())
	if neg {
		m++
	}
	return m
}

// magOf returns the magnitude and the sign of a bits value.
func magOf[L Layout](bits L) (mag uint64, neg bool) {
	return mu.MagInt64(int64(bits)), bits < 0
}

// composeBits narrows a sign and a 64-bit magnitude back into a layout,
// detecting overflow.
func composeBits[L Layout](neg bool, mag uint64) (L, bool) {
	if mag > maxMag[L](neg) {
		return 0, false
	}
	if neg {
		return L(-int64(mag)), true
	}
	return L(mag), true
}
