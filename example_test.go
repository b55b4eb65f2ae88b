// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational_test

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/db47h/rational"
)

func ExampleNewInt64() {
	x, _ := rational.NewInt64(6, -4)
	fmt.Println(x, x.Num(), x.Den())

	_, err := rational.NewInt64(1, 0)
	fmt.Println(errors.Is(err, rational.ErrInvalidArgument))

	_, err = rational.NewInt64(1, math.MinInt64)
	fmt.Println(errors.Is(err, rational.ErrOverflow))
	// Output:
	// -3/2 -3 2
	// true
	// true
}

func ExampleRat_Decimal() {
	x, _ := rational.NewInt64(1, 3)
	for _, mode := range []rational.RoundingMode{rational.ToNearestEven, rational.AwayFromZero} {
		d, acc := x.Decimal(2, mode)
		fmt.Printf("%v: %s (%v)\n", mode, d, acc)
	}
	// Output:
	// ToNearestEven: 0.33 (Below)
	// AwayFromZero: 0.34 (Above)
}

func ExampleRat_DecimalMode() {
	x, _ := rational.NewInt64(3, 40)
	d, acc := x.DecimalMode(rational.ToNearestEven)
	fmt.Println(d, acc)
	// Output:
	// 0.075 Exact
}

func ExampleRat_Pow() {
	x, _ := rational.NewInt64(-2, 3)
	for _, n := range []int{0, 1, 3, -2} {
		p, _ := x.Pow(n)
		fmt.Println(n, p.RatString())
	}
	_, err := rational.Int64Zero.Pow(-1)
	fmt.Println(err)
	// Output:
	// 0 1
	// 1 -2/3
	// 3 -8/27
	// -2 9/4
	// rational: Pow: invalid state: 0/1 is not invertible and cannot be raised to -1
}

func ExampleBig() {
	x, _ := rational.OfBig(big.NewInt(math.MaxInt64))
	y, _ := x.Mul(x)
	fmt.Println(y.RatString())

	_, err := rational.OfInt64(math.MaxInt64).Mul(rational.OfInt64(2))
	fmt.Println(err)
	// Output:
	// 85070591730234615847396907784232501249
	// rational: Mul: integer overflow: 9223372036854775807/1 * 2/1
}
