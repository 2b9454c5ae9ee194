// Copyright 2020 Aleksandr Demakin. All rights reserved.

package int256

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintAddSub(t *testing.T) {
	a := assert.New(t)
	one := FromUint64(1)
	maxWord := FromUint64(math.MaxUint64)
	// the carry ripples through all the words
	v, carry := Uint{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}.Add(one)
	a.Equal(Uint{}, v)
	a.Equal(uint64(1), carry)
	v, carry = maxWord.Add(one)
	a.Equal(Uint{0, 1, 0, 0}, v)
	a.Equal(uint64(0), carry)
	back, borrow := v.Sub(one)
	a.Equal(maxWord, back)
	a.Equal(uint64(0), borrow)
	_, borrow = Uint{}.Sub(one)
	a.Equal(uint64(1), borrow)
}

func TestUintMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, prod Uint
		overflow   bool
	}{
		{FromUint64(0), FromUint64(5), Uint{}, false},
		{FromUint64(3), FromUint64(7), FromUint64(21), false},
		{FromUint64(math.MaxUint64), FromUint64(math.MaxUint64), Uint{1, math.MaxUint64 - 1, 0, 0}, false},
		{From128(1, 0), From128(1, 0), Uint{0, 0, 1, 0}, false},
		{Uint{0, 0, 1, 0}, Uint{0, 0, 1, 0}, Uint{}, true},
		{Uint{0, 0, 0, 1}, FromUint64(2), Uint{0, 0, 0, 2}, false},
		{Uint{0, 0, 0, 1 << 63}, FromUint64(2), Uint{}, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			prod, overflow := test.x.Mul(test.y)
			a.Equal(test.overflow, overflow)
			if !test.overflow {
				a.Equal(test.prod, prod)
				prod2, _ := test.y.Mul(test.x)
				a.Equal(prod, prod2)
			}
		})
	}
}

func TestUintShifts(t *testing.T) {
	a := assert.New(t)
	a.Equal(Uint{0, 1, 0, 0}, FromUint64(1).Lsh(64))
	a.Equal(Uint{0, 0, 0, 1 << 63}, FromUint64(1).Lsh(255))
	a.Equal(Uint{}, FromUint64(1).Lsh(256))
	a.Equal(FromUint64(1), Uint{0, 1, 0, 0}.Rsh(64))
	a.Equal(FromUint64(1), Uint{0, 0, 0, 1 << 63}.Rsh(255))
	a.Equal(Uint{}, FromUint64(1).Rsh(1))
	a.Equal(Uint{0, 5, 0, 0}, Uint{1 << 63, 2, 0, 0}.Lsh(1))
}

func TestUintQuoRem(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		u, d, quo, rem Uint
	}{
		{FromUint64(100), FromUint64(7), FromUint64(14), FromUint64(2)},
		{FromUint64(7), FromUint64(100), Uint{}, FromUint64(7)},
		{From128(5, 7), From128(5, 7), FromUint64(1), Uint{}},
		// 2^128 / 2^64
		{Uint{0, 0, 1, 0}, Uint{0, 1, 0, 0}, Uint{0, 1, 0, 0}, Uint{}},
		// (2^192 + 5) / 2^64
		{Uint{5, 0, 0, 1}, Uint{0, 1, 0, 0}, Uint{0, 0, 1, 0}, FromUint64(5)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			quo, rem := test.u.QuoRem(test.d)
			a.Equal(test.quo, quo)
			a.Equal(test.rem, rem)
		})
	}
	a.Panics(func() {
		FromUint64(1).QuoRem(Uint{})
	})
}

// TestUintQuoRemReconstruct runs the multi-word Knuth path on composed
// inputs and checks the division identity u = q*d + r, r < d.
func TestUintQuoRemReconstruct(t *testing.T) {
	a := assert.New(t)
	quotients := []Uint{
		FromUint64(1),
		FromUint64(math.MaxUint64),
		From128(math.MaxUint64, 12345),
		{3, 0, 1, 0},
	}
	divisors := []Uint{
		From128(1, 0),
		From128(math.MaxUint64, math.MaxUint64),
		{0, 5, 1, 0},
		FromUint64(math.MaxUint64),
	}
	for i, q := range quotients {
		for j, d := range divisors {
			t.Run(fmt.Sprintf("%d_%d", i, j), func(t *testing.T) {
				u, overflow := q.Mul(d)
				if overflow {
					t.Skip("product out of range")
				}
				r, _ := d.Sub(FromUint64(1))
				u, carry := u.Add(r) // u = q*d + (d-1)
				if carry != 0 {
					t.Skip("sum out of range")
				}
				quo, rem := u.QuoRem(d)
				a.Equal(q, quo)
				a.Equal(r, rem)
			})
		}
	}
}

func TestUintSqrt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v, root Uint
	}{
		{Uint{}, Uint{}},
		{FromUint64(81), FromUint64(9)},
		{FromUint64(99), FromUint64(9)},
		// 2^128 and its neighbors
		{Uint{0, 0, 1, 0}, From128(1, 0)},
		{Uint{math.MaxUint64, math.MaxUint64, 0, 0}, FromUint64(math.MaxUint64)},
		{Uint{1, 0, 1, 0}, From128(1, 0)},
		// 2^200 = (2^100)^2
		{FromUint64(1).Lsh(200), FromUint64(1).Lsh(100)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.root, test.v.Sqrt())
		})
	}
}

// TestUintSqrtProperty checks the floor-root inequalities on wide inputs
// composed from squares.
func TestUintSqrtProperty(t *testing.T) {
	a := assert.New(t)
	roots := []Uint{
		FromUint64(math.MaxUint64),
		From128(1, 12345),
		From128(math.MaxUint64, math.MaxUint64),
		FromUint64(1).Lsh(100),
	}
	for i, r := range roots {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			sq, overflow := r.Mul(r)
			if !a.False(overflow) {
				return
			}
			a.Equal(r, sq.Sqrt())
			// one below the square roots to r-1
			below, _ := sq.Sub(FromUint64(1))
			rm1, _ := r.Sub(FromUint64(1))
			a.Equal(rm1, below.Sqrt())
			// r^2 + 2r still roots to r
			above, _ := sq.Add(r)
			above, _ = above.Add(r)
			a.Equal(r, above.Sqrt())
		})
	}
}

func TestUintString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v Uint
		s string
	}{
		{Uint{}, "0"},
		{FromUint64(123), "123"},
		{FromUint64(math.MaxUint64), "18446744073709551615"},
		{Uint{0, 0, 1, 0}, "340282366920938463463374607431768211456"},
		{Uint{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64},
			"115792089237316195423570985008687907853269984665640564039457584007913129639935"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.v.String())
		})
	}
}

func TestUintConversions(t *testing.T) {
	a := assert.New(t)
	a.True(FromUint64(5).IsUint64())
	a.False(From128(1, 0).IsUint64())
	a.Equal(uint64(5), FromUint64(5).Uint64())
	hi, lo, ok := From128(7, 9).To128()
	a.True(ok)
	a.Equal(uint64(7), hi)
	a.Equal(uint64(9), lo)
	_, _, ok = Uint{0, 0, 1, 0}.To128()
	a.False(ok)
}
