// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import "errors"

// Arithmetic errors, returned by operations on already-valid values.
var (
	// ErrOverflow is returned when a result does not fit the storage type.
	ErrOverflow = errors.New("overflow")
	// ErrDivisionByZero is returned by the division family for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain is returned for operations outside their domain,
	// e.g. a square root of a negative value.
	ErrDomain = errors.New("domain violation")
)

// Conversion errors, returned when an external representation
// cannot be turned into a value.
var (
	ErrNotFinite           = errors.New("not finite")
	ErrTooBigNumber        = errors.New("too big number")
	ErrTooBigMantissa      = errors.New("too big mantissa")
	ErrUnsupportedExponent = errors.New("unsupported exponent")
	ErrTooLongFraction     = errors.New("too long fractional part")
)
