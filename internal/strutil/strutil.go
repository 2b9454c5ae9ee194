// Package strutil contains decimal text helpers shared by the fixed-point codecs.
package strutil

import (
	"fmt"
	"strings"
)

const delim = '.'

// PosError is a parse error carrying the position of the offending symbol.
type PosError struct {
	Pos int
	Msg string
}

func NewPosError(msg string, pos int) *PosError {
	return &PosError{Msg: msg, Pos: pos}
}

func (pe PosError) Error() string {
	return pe.Msg + fmt.Sprintf(" at pos %d", pe.Pos)
}

// Split breaks a decimal string into a sign and two digit-only parts.
// The expected form is [+-]digits[.digits]. The integral part may be
// empty only if a fractional part is present, and vice versa.
// No exponents, spaces, or grouping separators are accepted.
func Split(s string) (neg bool, integ, frac string, err error) {
	if len(s) == 0 {
		return false, "", "", fmt.Errorf("empty input")
	}
	offset := 0
	switch s[0] {
	case '-':
		neg = true
		s, offset = s[1:], 1
	case '+':
		s, offset = s[1:], 1
	}
	if len(s) == 0 {
		return false, "", "", fmt.Errorf("empty input")
	}
	delimPos := -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
		case c == delim:
			if delimPos >= 0 {
				return false, "", "", NewPosError("unexpected delimeter", i+offset+1)
			}
			delimPos = i
		default:
			return false, "", "", NewPosError(fmt.Sprintf("unexpected symbol %q", c), i+offset+1)
		}
	}
	if delimPos < 0 {
		return neg, s, "", nil
	}
	integ, frac = s[:delimPos], s[delimPos+1:]
	if len(frac) == 0 {
		return false, "", "", NewPosError("empty fractional part", delimPos+offset+1)
	}
	if len(integ) == 0 && len(frac) == 0 {
		return false, "", "", fmt.Errorf("empty input")
	}
	return neg, integ, frac, nil
}

// TrimLeadingZeros removes leading zeros, keeping at least one digit.
func TrimLeadingZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if len(trimmed) == 0 && len(s) != 0 {
		return "0"
	}
	return trimmed
}

// WriteParts writes a canonical decimal representation:
// sign prefix only if negative, the integral part, a delimiter, and the
// fractional part with trailing zeros stripped, but at least one digit kept.
func WriteParts(builder *strings.Builder, neg bool, integ, frac string) {
	if neg {
		builder.WriteByte('-')
	}
	builder.WriteString(integ)
	builder.WriteByte(delim)
	frac = strings.TrimRight(frac, "0")
	if len(frac) == 0 {
		frac = "0"
	}
	builder.WriteString(frac)
}
