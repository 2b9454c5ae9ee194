// Copyright 2020 Aleksandr Demakin. All rights reserved.

package int256

import (
	"fmt"
	"math"
	"testing"

	"github.com/avdva/fixedpoint/int128"
	"github.com/stretchr/testify/assert"
)

func TestIntFrom(t *testing.T) {
	a := assert.New(t)
	a.Equal(Int{5, 0, 0, 0}, FromInt64(5))
	ones := uint64(math.MaxUint64)
	a.Equal(Int{ones - 4, ones, ones, ones}, FromInt64(-5))
	a.Equal(Int{0, 1, 0, 0}, FromInt128(int128.New(1, 0)))
	a.Equal(Int{0, 1 << 63, ones, ones}, FromInt128(int128.Min()))

	v, ok := FromInt64(-5).Int64()
	a.True(ok)
	a.Equal(int64(-5), v)
	v128, ok := FromInt128(int128.Min()).Int128()
	a.True(ok)
	a.Equal(int128.Min(), v128)
	_, ok = Max().Int64()
	a.False(ok)
	_, ok = Max().Int128()
	a.False(ok)
}

func TestIntSignCmp(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, (Int{}).Sign())
	a.Equal(1, FromInt64(1).Sign())
	a.Equal(-1, FromInt64(-1).Sign())
	a.Equal(1, Max().Sign())
	a.Equal(-1, Min().Sign())

	a.Equal(-1, FromInt64(-1).Cmp(Int{}))
	a.Equal(-1, Min().Cmp(Max()))
	a.Equal(1, FromInt64(1).Cmp(FromInt64(-1)))
	a.Equal(0, Max().Cmp(Max()))
	a.Equal(-1, FromInt64(-2).Cmp(FromInt64(-1)))
}

func TestIntAddSubNeg(t *testing.T) {
	a := assert.New(t)
	one, minusOne := FromInt64(1), FromInt64(-1)
	a.Equal(Int{}, one.Add(minusOne))
	a.Equal(FromInt64(2), one.Sub(minusOne))
	a.Equal(minusOne, Max().Add(Min()))
	a.Equal(minusOne, one.Neg())
	a.Equal(one, minusOne.Neg())
	a.Equal(Min(), Max().Neg().Sub(one))
	a.Panics(func() {
		Min().Neg()
	})
}

func TestIntMagnitude(t *testing.T) {
	a := assert.New(t)
	mag, neg := FromInt64(-5).Magnitude()
	a.True(neg)
	a.Equal(Uint{5, 0, 0, 0}, mag)
	mag, neg = Min().Magnitude()
	a.True(neg)
	a.Equal(Uint{0, 0, 0, 1 << 63}, mag)

	v, ok := FromMagnitude(true, Uint{0, 0, 0, 1 << 63})
	a.True(ok)
	a.Equal(Min(), v)
	_, ok = FromMagnitude(false, Uint{0, 0, 0, 1 << 63})
	a.False(ok)
	_, ok = FromMagnitude(true, Uint{1, 0, 0, 1 << 63})
	a.False(ok)
}

func TestIntMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, prod Int
		overflow   bool
	}{
		{FromInt64(3), FromInt64(7), FromInt64(21), false},
		{FromInt64(-3), FromInt64(7), FromInt64(-21), false},
		{FromInt64(-3), FromInt64(-7), FromInt64(21), false},
		{Max(), FromInt64(1), Max(), false},
		{Max(), FromInt64(-1), Max().Neg(), false},
		{Max(), FromInt64(2), Int{}, true},
		{Min(), FromInt64(-1), Int{}, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			prod, overflow := test.x.Mul(test.y)
			a.Equal(test.overflow, overflow)
			if !test.overflow {
				a.Equal(test.prod, prod)
			}
		})
	}
}

func TestIntQuoRem(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, quo, rem Int
	}{
		{FromInt64(7), FromInt64(2), FromInt64(3), FromInt64(1)},
		{FromInt64(-7), FromInt64(2), FromInt64(-3), FromInt64(-1)},
		{FromInt64(7), FromInt64(-2), FromInt64(-3), FromInt64(1)},
		{FromInt64(-7), FromInt64(-2), FromInt64(3), FromInt64(-1)},
		{Min(), FromInt64(1), Min(), Int{}},
		{Max(), Max(), FromInt64(1), Int{}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			quo, rem := test.x.QuoRem(test.y)
			a.Equal(test.quo, quo)
			a.Equal(test.rem, rem)
		})
	}
	// Min/2 = -2^254
	halfMin, ok := FromMagnitude(true, Uint{0, 0, 0, 1 << 62})
	a.True(ok)
	quo, rem := Min().QuoRem(FromInt64(2))
	a.Equal(halfMin, quo)
	a.Equal(Int{}, rem)
	a.Panics(func() {
		FromInt64(1).QuoRem(Int{})
	})
	a.Panics(func() {
		Min().QuoRem(FromInt64(-1))
	})
}

func TestIntSqrt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v                    Int
		floor, ceil, nearest Int
	}{
		{Int{}, Int{}, Int{}, Int{}},
		{FromInt64(1), FromInt64(1), FromInt64(1), FromInt64(1)},
		{FromInt64(2), FromInt64(1), FromInt64(2), FromInt64(1)},
		{FromInt64(3), FromInt64(1), FromInt64(2), FromInt64(2)},
		{FromInt64(4), FromInt64(2), FromInt64(2), FromInt64(2)},
		{FromInt64(6), FromInt64(2), FromInt64(3), FromInt64(2)},
		{FromInt64(8), FromInt64(2), FromInt64(3), FromInt64(3)},
		{FromInt64(81), FromInt64(9), FromInt64(9), FromInt64(9)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.floor, test.v.SqrtFloor())
			a.Equal(test.ceil, test.v.SqrtCeil())
			a.Equal(test.nearest, test.v.SqrtNearest())
		})
	}
	a.Panics(func() {
		FromInt64(-1).SqrtFloor()
	})
	a.Panics(func() {
		FromInt64(-1).SqrtNearest()
	})
}

func TestIntString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v Int
		s string
	}{
		{Int{}, "0"},
		{FromInt64(123), "123"},
		{FromInt64(-123), "-123"},
		{Max(), "57896044618658097711785492504343953926634992332820282019728792003956564819967"},
		{Min(), "-57896044618658097711785492504343953926634992332820282019728792003956564819968"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.v.String())
		})
	}
}
