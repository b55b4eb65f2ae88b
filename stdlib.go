// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors types and constants from math/big.

package rational

import "math/big"

// DefaultDecimalPrec is the number of significant decimal digits used by
// DecimalMode for non-terminating expansions and by DecimalPrec when given a
// precision of 0. It matches IEEE-754 decimal128.
const DefaultDecimalPrec = 34

// RoundingMode determines how a Rat is rounded when it is converted to a
// decimal of limited scale or precision. Rounding may change the value; the
// rounding error is described by the returned Accuracy.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
	ToNearestZero                     // ties toward zero; no IEEE 754-2008 equivalent
)

//go:generate stringer -type=RoundingMode

// Accuracy describes the rounding error produced by a conversion, relative to
// the exact value.
type Accuracy int8

// Constants describing the Accuracy of a conversion.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate stringer -type=Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// pow10 returns 10**n as a new big.Int.
func pow10(n uint64) *big.Int {
	return new(big.Int).Exp(bigTen, new(big.Int).SetUint64(n), nil)
}

// ndigits returns the number of decimal digits of |x|, 1 for x == 0.
func ndigits(x *big.Int) int64 {
	s := x.Text(10)
	if x.Sign() < 0 {
		return int64(len(s) - 1)
	}
	return int64(len(s))
}
