// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"math/bits"
	"strconv"
	"strings"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
	su "github.com/avdva/fixedpoint/internal/strutil"
)

// maxFracLen limits the fractional part of parsed strings.
// digits beyond the precision only matter for the rounding decision,
// which is settled by the first of them, so the bound is not a real
// restriction, it only rejects absurd inputs early.
const maxFracLen = 128

// FromString parses a decimal string of the form [+-]digits[.digits].
// A fractional part longer than the precision is rounded half away from zero.
// Returns *strutil.PosError for malformed input, ErrTooBigNumber if the
// value does not fit the layout.
func FromString[L Layout, P Precision](s string) (Value[L, P], error) {
	return fromString[L, P](s, false)
}

// FromStringExact is FromString rejecting any input that cannot be
// represented exactly, with ErrTooLongFraction.
func FromStringExact[L Layout, P Precision](s string) (Value[L, P], error) {
	return fromString[L, P](s, true)
}

// MustFromString is FromString panicking on error. For tests and constants.
func MustFromString[L Layout, P Precision](s string) Value[L, P] {
	v, err := FromString[L, P](s)
	if err != nil {
		panic(err)
	}
	return v
}

func fromString[L Layout, P Precision](s string, exact bool) (Value[L, P], error) {
	neg, integ, frac, err := su.Split(s)
	if err != nil {
		return Value[L, P]{}, err
	}
	integ = su.TrimLeadingZeros(integ)
	p := DigitsOf[P]()
	if len(frac) > p {
		if exact || len(frac) > maxFracLen {
			return Value[L, P]{}, ErrTooLongFraction
		}
	}
	var mag uint64
	add := func(c byte) bool {
		hi, lo := bits.Mul64(mag, 10)
		if hi != 0 {
			return false
		}
		mag = lo + uint64(c-'0')
		return mag >= lo
	}
	for i := 0; i < len(integ); i++ {
		if !add(integ[i]) {
			return Value[L, P]{}, ErrTooBigNumber
		}
	}
	for i := 0; i < p; i++ {
		c := byte('0')
		if i < len(frac) {
			c = frac[i]
		}
		if !add(c) {
			return Value[L, P]{}, ErrTooBigNumber
		}
	}
	// the first dropped digit alone decides half-away rounding.
	if len(frac) > p && frac[p] >= '5' {
		mag++
		if mag == 0 {
			return Value[L, P]{}, ErrTooBigNumber
		}
	}
	b, ok := composeBits[L](neg, mag)
	if !ok {
		return Value[L, P]{}, ErrTooBigNumber
	}
	return Value[L, P]{bits: b}, nil
}

// String formats the value as [-]digits.digits with trailing
// fractional zeros stripped, at least one digit on either side of the dot.
func (v Value[L, P]) String() string {
	var sb strings.Builder
	sb.Grow(21)
	mag := mu.MagInt64(int64(v.bits))
	scale := scaleOf[P]()
	q, r := mag/scale, mag%scale
	frac := strconv.FormatUint(r, 10)
	if pad := DigitsOf[P]() - len(frac); pad > 0 {
		frac = zeros[:pad] + frac
	}
	su.WriteParts(&sb, v.bits < 0, strconv.FormatUint(q, 10), frac)
	return sb.String()
}

const zeros = "000000000000000000"

// MarshalText implements encoding.TextMarshaler.
func (v Value[L, P]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value[L, P]) UnmarshalText(data []byte) error {
	parsed, err := FromString[L, P](string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The value is encoded as a string
// to survive json decoders that read all numbers as floats.
func (v Value[L, P]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting both a string and
// a bare json number.
func (v *Value[L, P]) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return v.UnmarshalText([]byte(s))
}
