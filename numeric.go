// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import "github.com/shopspring/decimal"

// Numeric is the set of operations shared by all numeric kinds. N is the
// implementing type itself.
//
// Binary operations return an error wrapping ErrNilOperand if their operand
// is nil. Quo returns ErrInvalidArgument for a zero divisor and Inv returns
// ErrInvalidState for a zero receiver. Implementations over bounded integers
// return ErrOverflow instead of a wrong result.
type Numeric[N any] interface {
	IsInvertible() bool
	IsInteger() bool
	IsZero() bool
	IsOne() bool
	Neg() (N, error)
	Abs() (N, error)
	Add(y N) (N, error)
	Sub(y N) (N, error)
	Mul(y N) (N, error)
	Quo(y N) (N, error)
	Inv() (N, error)
	Pow(n int) (N, error)
}

// Rational extends Numeric with predicates, a total order and decimal
// conversions specific to rational numbers.
type Rational[R any] interface {
	Numeric[R]

	IsUnitFraction() bool
	IsDyadic() bool
	IsProper() bool
	IsPositive() bool
	IsNegative() bool
	Sign() int

	Cmp(y R) (int, error)
	Less(y R) (bool, error)
	LessEq(y R) (bool, error)
	Greater(y R) (bool, error)
	GreaterEq(y R) (bool, error)
	Min(y R) (R, error)
	Max(y R) (R, error)

	Inc() (R, error)
	Dec() (R, error)

	Decimal(scale int32, mode RoundingMode) (decimal.Decimal, Accuracy)
	DecimalMode(mode RoundingMode) (decimal.Decimal, Accuracy)
	DecimalPrec(prec uint, mode RoundingMode) (decimal.Decimal, Accuracy)
}

var (
	_ Rational[*Int64]          = (*Int64)(nil)
	_ Rational[*UncheckedInt64] = (*UncheckedInt64)(nil)
	_ Rational[*Big]            = (*Big)(nil)
)
