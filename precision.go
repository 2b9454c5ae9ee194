// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Precision fixes the number of decimal digits after the point at the
// type level. The markers P1..P18 are the supported precisions: 18 is
// the largest power of ten whose scale fits a single 64-bit word.
type Precision interface {
	Digits() int
}

type (
	P1  struct{}
	P2  struct{}
	P3  struct{}
	P4  struct{}
	P5  struct{}
	P6  struct{}
	P7  struct{}
	P8  struct{}
	P9  struct{}
	P10 struct{}
	P11 struct{}
	P12 struct{}
	P13 struct{}
	P14 struct{}
	P15 struct{}
	P16 struct{}
	P17 struct{}
	P18 struct{}
)

func (P1) Digits() int  { return 1 }
func (P2) Digits() int  { return 2 }
func (P3) Digits() int  { return 3 }
func (P4) Digits() int  { return 4 }
func (P5) Digits() int  { return 5 }
func (P6) Digits() int  { return 6 }
func (P7) Digits() int  { return 7 }
func (P8) Digits() int  { return 8 }
func (P9) Digits() int  { return 9 }
func (P10) Digits() int { return 10 }
func (P11) Digits() int { return 11 }
func (P12) Digits() int { return 12 }
func (P13) Digits() int { return 13 }
func (P14) Digits() int { return 14 }
func (P15) Digits() int { return 15 }
func (P16) Digits() int { return 16 }
func (P17) Digits() int { return 17 }
func (P18) Digits() int { return 18 }

// DigitsOf returns the number of fractional digits of a precision marker.
func DigitsOf[P Precision]() int {
	var p P
	return p.Digits()
}

// scaleOf returns 10^P as a uint64.
func scaleOf[P Precision]() uint64 {
	return mu.Pow10(DigitsOf[P]())
}
