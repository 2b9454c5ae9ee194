// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp128

import (
	"strconv"
	"strings"

	fp "github.com/avdva/fixedpoint"
	"github.com/avdva/fixedpoint/int128"
	mu "github.com/avdva/fixedpoint/internal/mathutil"
	su "github.com/avdva/fixedpoint/internal/strutil"
)

const maxFracLen = 128

// FromString parses a decimal string of the form [+-]digits[.digits].
// A fractional part longer than the precision is rounded half away from zero.
// Returns *strutil.PosError for malformed input, ErrTooBigNumber if the
// value does not fit 128 bits.
func FromString[P fp.Precision](s string) (Value[P], error) {
	return fromString[P](s, false)
}

// FromStringExact is FromString rejecting any input that cannot be
// represented exactly, with ErrTooLongFraction.
func FromStringExact[P fp.Precision](s string) (Value[P], error) {
	return fromString[P](s, true)
}

// MustFromString is FromString panicking on error. For tests and constants.
func MustFromString[P fp.Precision](s string) Value[P] {
	v, err := FromString[P](s)
	if err != nil {
		panic(err)
	}
	return v
}

func fromString[P fp.Precision](s string, exact bool) (Value[P], error) {
	neg, integ, frac, err := su.Split(s)
	if err != nil {
		return Value[P]{}, err
	}
	integ = su.TrimLeadingZeros(integ)
	p := fp.DigitsOf[P]()
	if len(frac) > p {
		if exact || len(frac) > maxFracLen {
			return Value[P]{}, fp.ErrTooLongFraction
		}
	}
	var hi, lo uint64
	add := func(c byte) bool {
		var overflow bool
		hi, lo, overflow = mu.Mul128By64(hi, lo, 10)
		if overflow {
			return false
		}
		var carry uint64
		hi, lo, carry = mu.Add128(hi, lo, 0, uint64(c-'0'))
		return carry == 0
	}
	for i := 0; i < len(integ); i++ {
		if !add(integ[i]) {
			return Value[P]{}, fp.ErrTooBigNumber
		}
	}
	for i := 0; i < p; i++ {
		c := byte('0')
		if i < len(frac) {
			c = frac[i]
		}
		if !add(c) {
			return Value[P]{}, fp.ErrTooBigNumber
		}
	}
	// the first dropped digit alone decides half-away rounding.
	if len(frac) > p && frac[p] >= '5' {
		var carry uint64
		hi, lo, carry = mu.Add128(hi, lo, 0, 1)
		if carry != 0 {
			return Value[P]{}, fp.ErrTooBigNumber
		}
	}
	b, ok := int128.FromMagnitude(neg, hi, lo)
	if !ok {
		return Value[P]{}, fp.ErrTooBigNumber
	}
	return Value[P]{bits: b}, nil
}

// String formats the value as [-]digits.digits with trailing
// fractional zeros stripped, at least one digit on either side of the dot.
func (v Value[P]) String() string {
	var sb strings.Builder
	sb.Grow(42)
	hi, lo := v.bits.Magnitude()
	qhi, qlo, rem := mu.Div128By64(hi, lo, scaleOf[P]())
	frac := strconv.FormatUint(rem, 10)
	if pad := fp.DigitsOf[P]() - len(frac); pad > 0 {
		frac = zeros[:pad] + frac
	}
	su.WriteParts(&sb, v.bits.Sign() < 0, int128.FormatMagnitude(qhi, qlo), frac)
	return sb.String()
}

const zeros = "000000000000000000"

// MarshalText implements encoding.TextMarshaler.
func (v Value[P]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value[P]) UnmarshalText(data []byte) error {
	parsed, err := FromString[P](string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The value is encoded as a string
// to survive json decoders that read all numbers as floats.
func (v Value[P]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting both a string and
// a bare json number.
func (v *Value[P]) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return v.UnmarshalText([]byte(s))
}
