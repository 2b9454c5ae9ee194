// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint_test

import (
	"fmt"

	fp "github.com/avdva/fixedpoint"
)

// Money is a typical instantiation: 64 bits, 9 digits after the point.
type Money = fp.Value[int64, fp.P9]

func ExampleFromString() {
	price := fp.MustFromString[int64, fp.P9]("0.015")
	amount := fp.MustFromString[int64, fp.P9]("100")
	total, _ := price.Mul(amount, fp.Nearest)
	fmt.Println(total)
	// Output:
	// 1.5
}

func ExampleValue_Div() {
	v := fp.MustFromString[int64, fp.P9]("100")
	three := fp.MustFromString[int64, fp.P9]("3")
	floor, _ := v.Div(three, fp.Floor)
	ceil, _ := v.Div(three, fp.Ceil)
	fmt.Println(floor)
	fmt.Println(ceil)
	// Output:
	// 33.333333333
	// 33.333333334
}

func ExampleValue_Add() {
	var balance Money
	deposit := fp.MustFromString[int64, fp.P9]("1.25")
	for i := 0; i < 3; i++ {
		balance = balance.SaturatingAdd(deposit)
	}
	fmt.Println(balance)
	if _, err := fp.Max[int64, fp.P9]().Add(fp.Epsilon[int64, fp.P9]()); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 3.75
	// overflow
}

func ExampleValue_Sqrt() {
	v := fp.MustFromString[int64, fp.P9]("2")
	root, _ := v.Sqrt(fp.Nearest)
	fmt.Println(root)
	// Output:
	// 1.414213562
}
