// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s    string
		bits int64
		err  string
	}{
		{"0", 0, ""},
		{"-0", 0, ""},
		{"-0.0", 0, ""},
		{"+1.5", 1500000000, ""},
		{"00001.10000", 1100000000, ""},
		{"525", 525000000000, ""},
		{"-525.000000001", -525000000001, ""},
		{"9223372036.854775807", math.MaxInt64, ""},
		{"-9223372036.854775808", math.MinInt64, ""},
		// rounding of digits beyond the precision, half away from zero
		{"0.00000000049", 0, ""},
		{"0.00000000050", 1, ""},
		{"-0.0000000005", -1, ""},
		{"1.9999999995", 2000000000, ""},

		{"9223372036.854775808", 0, "too big number"},
		{"-9223372036.854775809", 0, "too big number"},
		{"10000000000", 0, "too big number"},
		{"", 0, "empty input"},
		{"-", 0, "empty input"},
		{"1.", 0, "empty fractional part at pos 2"},
		{"1..2", 0, "unexpected delimeter at pos 3"},
		{"12a", 0, "unexpected symbol 'a' at pos 3"},
		{" 1", 0, "unexpected symbol ' ' at pos 1"},
		{"1e5", 0, "unexpected symbol 'e' at pos 2"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromString[int64, P9](test.s)
			if len(test.err) > 0 {
				a.EqualError(err, test.err)
				a.Panics(func() {
					MustFromString[int64, P9](test.s)
				})
			} else if a.NoError(err) {
				a.Equal(test.bits, v.Bits())
			}
		})
	}
}

func TestFromStringExact(t *testing.T) {
	a := assert.New(t)
	if v, err := FromStringExact[int64, P9]("1.000000001"); a.NoError(err) {
		a.Equal(int64(1000000001), v.Bits())
	}
	_, err := FromStringExact[int64, P9]("1.0000000001")
	a.Equal(ErrTooLongFraction, err)
	_, err = FromStringExact[int64, P9]("1.0000000000")
	a.Equal(ErrTooLongFraction, err)
}

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits int64
		s    string
	}{
		{0, "0.0"},
		{1, "0.000000001"},
		{-1, "-0.000000001"},
		{1500000000, "1.5"},
		{-1500000000, "-1.5"},
		{525000000000, "525.0"},
		{math.MaxInt64, "9223372036.854775807"},
		{math.MinInt64, "-9223372036.854775808"},
		{1000000001, "1.000000001"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := FromBits[int64, P9](test.bits)
			a.Equal(test.s, v.String())
			back, err := FromString[int64, P9](test.s)
			if a.NoError(err) {
				a.Equal(v, back)
			}
		})
	}
}

func TestStringOtherPrecisions(t *testing.T) {
	a := assert.New(t)
	a.Equal("12.7", FromBits[int8, P1](127).String())
	a.Equal("-12.8", FromBits[int8, P1](-128).String())
	a.Equal("3.2767", FromBits[int16, P4](math.MaxInt16).String())
	a.Equal("0.021474836", FromBits[int32, P9](math.MaxInt32/100).String())
	a.Equal("9.223372036854775807", FromBits[int64, P18](math.MaxInt64).String())
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	v := MustFromString[int64, P9]("-123.456")
	data, err := json.Marshal(v)
	if a.NoError(err) {
		a.Equal(`"-123.456"`, string(data))
	}
	var back dec9
	if a.NoError(json.Unmarshal(data, &back)) {
		a.Equal(v, back)
	}
	// bare json numbers are accepted as well
	if a.NoError(json.Unmarshal([]byte(`-123.456`), &back)) {
		a.Equal(v, back)
	}
	a.Error(json.Unmarshal([]byte(`"12c"`), &back))

	type pair struct {
		Price  dec9 `json:"price"`
		Amount dec9 `json:"amount"`
	}
	var p pair
	if a.NoError(json.Unmarshal([]byte(`{"price": "0.015", "amount": 100}`), &p)) {
		a.Equal(MustFromString[int64, P9]("0.015"), p.Price)
		a.Equal(MustFromString[int64, P9]("100"), p.Amount)
	}
}
