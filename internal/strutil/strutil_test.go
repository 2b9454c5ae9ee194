// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s           string
		neg         bool
		integ, frac string
		err         string
	}{
		{"0", false, "0", "", ""},
		{"123", false, "123", "", ""},
		{"+123", false, "123", "", ""},
		{"-123", true, "123", "", ""},
		{"123.456", false, "123", "456", ""},
		{"-123.456", true, "123", "456", ""},
		{".5", false, "", "5", ""},
		{"-.5", true, "", "5", ""},
		{"00123.450", false, "00123", "450", ""},

		{"", false, "", "", "empty input"},
		{"-", false, "", "", "empty input"},
		{"+", false, "", "", "empty input"},
		{"1.", false, "", "", "empty fractional part at pos 2"},
		{"-1.", false, "", "", "empty fractional part at pos 3"},
		{"1.2.3", false, "", "", "unexpected delimeter at pos 4"},
		{"1,2", false, "", "", "unexpected symbol ',' at pos 2"},
		{"abc", false, "", "", "unexpected symbol 'a' at pos 1"},
		{"--1", false, "", "", "unexpected symbol '-' at pos 2"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			neg, integ, frac, err := Split(test.s)
			if len(test.err) > 0 {
				a.EqualError(err, test.err)
			} else if a.NoError(err) {
				a.Equal(test.neg, neg)
				a.Equal(test.integ, integ)
				a.Equal(test.frac, frac)
			}
		})
	}
}

func TestTrimLeadingZeros(t *testing.T) {
	a := assert.New(t)
	a.Equal("", TrimLeadingZeros(""))
	a.Equal("0", TrimLeadingZeros("0"))
	a.Equal("0", TrimLeadingZeros("0000"))
	a.Equal("123", TrimLeadingZeros("000123"))
	a.Equal("123", TrimLeadingZeros("123"))
}

func TestWriteParts(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		neg         bool
		integ, frac string
		res         string
	}{
		{false, "0", "0", "0.0"},
		{false, "1", "500", "1.5"},
		{true, "1", "500", "-1.5"},
		{false, "123", "000", "123.0"},
		{true, "0", "001", "-0.001"},
		{false, "525", "000000000", "525.0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var sb strings.Builder
			WriteParts(&sb, test.neg, test.integ, test.frac)
			a.Equal(test.res, sb.String())
		})
	}
}
