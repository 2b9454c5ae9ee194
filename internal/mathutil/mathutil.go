package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow, or 0 if the result does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// MagInt64 returns the magnitude of v as a uint64.
// Unlike a signed abs it is exact for math.MinInt64.
func MagInt64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// TrimMantExp removes trailing decimal zeros from m, increasing e,
// while e stays below eMax.
func TrimMantExp(m uint64, e, eMax int32) (uint64, int32) {
	for e < eMax && m != 0 && m%10 == 0 {
		m /= 10
		e++
	}
	return m, e
}

// Add128 returns x+y over (hi, lo) pairs and a carry out of the high word.
func Add128(xhi, xlo, yhi, ylo uint64) (hi, lo, carry uint64) {
	lo, carry = bits.Add64(xlo, ylo, 0)
	hi, carry = bits.Add64(xhi, yhi, carry)
	return hi, lo, carry
}

// Sub128 returns x-y over (hi, lo) pairs and a borrow out of the high word.
func Sub128(xhi, xlo, yhi, ylo uint64) (hi, lo, borrow uint64) {
	lo, borrow = bits.Sub64(xlo, ylo, 0)
	hi, borrow = bits.Sub64(xhi, yhi, borrow)
	return hi, lo, borrow
}

// Cmp128 compares two unsigned 128-bit values given as (hi, lo) pairs.
func Cmp128(xhi, xlo, yhi, ylo uint64) int {
	switch {
	case xhi > yhi:
		return 1
	case xhi < yhi:
		return -1
	case xlo > ylo:
		return 1
	case xlo < ylo:
		return -1
	default:
		return 0
	}
}

// Mul128By64 multiplies a 128-bit value by a 64-bit one.
// overflow is set if the true product does not fit 128 bits.
func Mul128By64(hi, lo, m uint64) (rhi, rlo uint64, overflow bool) {
	h1, rlo := bits.Mul64(lo, m)
	h2, l2 := bits.Mul64(hi, m)
	rhi, carry := bits.Add64(h1, l2, 0)
	return rhi, rlo, h2 != 0 || carry != 0
}

// Div128By64 divides a 128-bit value by a 64-bit one.
// Unlike bits.Div64, the quotient may occupy both words.
func Div128By64(hi, lo, d uint64) (qhi, qlo, rem uint64) {
	qhi = hi / d
	qlo, rem = bits.Div64(hi%d, lo, d)
	return qhi, qlo, rem
}

// Shl128 shifts a 128-bit value left by s bits.
// overflow is set if any non-zero bit is shifted out.
func Shl128(hi, lo uint64, s uint) (rhi, rlo uint64, overflow bool) {
	switch {
	case s == 0:
		return hi, lo, false
	case s >= 128:
		return 0, 0, hi != 0 || lo != 0
	case s >= 64:
		return lo << (s - 64), 0, hi != 0 || lo>>(128-s) != 0
	default:
		return hi<<s | lo>>(64-s), lo << s, hi>>(64-s) != 0
	}
}

func sqrLE128(s, hi, lo uint64) bool {
	ph, pl := bits.Mul64(s, s)
	return ph < hi || ph == hi && pl <= lo
}

// Sqrt64 returns the largest s, such that s*s <= v.
func Sqrt64(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	// the float estimate is within a couple of units of the true root,
	// the exact comparisons below settle it.
	s := uint64(math.Sqrt(float64(v)))
	for s > 1 && !sqrLE128(s, 0, v) {
		s--
	}
	for s < math.MaxUint64 && sqrLE128(s+1, 0, v) {
		s++
	}
	return s
}

// Sqrt128 returns the largest s, such that s*s <= hi<<64|lo.
func Sqrt128(hi, lo uint64) uint64 {
	if hi == 0 {
		return Sqrt64(lo)
	}
	est := math.Sqrt(float64(hi)*(1<<64) + float64(lo))
	s := uint64(math.MaxUint64)
	if est < 1<<64 {
		s = uint64(est)
	}
	// one Newton iteration squares the accuracy of the estimate,
	// after it s is off by no more than a couple of units.
	if hi < s {
		q, _ := bits.Div64(hi, lo, s)
		sum, carry := bits.Add64(s, q, 0)
		s = sum>>1 | carry<<63
	}
	for s > 1 && !sqrLE128(s, hi, lo) {
		s--
	}
	for s < math.MaxUint64 && sqrLE128(s+1, hi, lo) {
		s++
	}
	return s
}

// FloatParts decomposes a finite non-zero float into an integer mantissa
// and a binary exponent, so that |f| = mant * 2^exp. Denormals have no
// implicit leading bit and a fixed exponent. Trailing zero bits of the
// mantissa are folded into the exponent while it stays negative.
func FloatParts(f float64) (mant uint64, exp int) {
	u := math.Float64bits(f)
	mant = u & (1<<52 - 1)
	biased := int(u >> 52 & 0x7ff)
	if biased == 0 {
		exp = -1074
	} else {
		mant |= 1 << 52
		exp = biased - 1075 // exponent bias plus the mantissa width
	}
	if tz := bits.TrailingZeros64(mant); tz > 0 && exp < 0 {
		if tz > -exp {
			tz = -exp
		}
		mant >>= uint(tz)
		exp += tz
	}
	return mant, exp
}

// Rsh128Rounded shifts a 128-bit value right by k bits, rounding up only
// if the dropped remainder strictly exceeds half of 2^k.
func Rsh128Rounded(hi, lo uint64, k uint) (uint64, uint64) {
	if k == 0 {
		return hi, lo
	}
	if k > 128 {
		return 0, 0
	}
	var rhi, rlo uint64
	if k >= 64 {
		rlo = hi >> (k - 64)
	} else {
		rhi = hi >> k
		rlo = lo>>k | hi<<(64-k)
	}
	if bitAt128(hi, lo, k-1) && lowBitsSet128(hi, lo, k-1) {
		rlo++
		if rlo == 0 {
			rhi++
		}
	}
	return rhi, rlo
}

func bitAt128(hi, lo uint64, i uint) bool {
	if i >= 64 {
		return hi>>(i-64)&1 == 1
	}
	return lo>>i&1 == 1
}

// lowBitsSet128 reports whether any of the bits [0, i) is set.
func lowBitsSet128(hi, lo uint64, i uint) bool {
	switch {
	case i == 0:
		return false
	case i >= 64:
		return lo != 0 || hi&(1<<(i-64)-1) != 0
	default:
		return lo&(1<<i-1) != 0
	}
}
