// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import "math/big"

// Int64 is a rational number with int64 numerator and denominator. All its
// operations are overflow-checked and return an error wrapping ErrOverflow
// rather than a wrong result.
type Int64 = Rat[int64, Int64Domain]

// UncheckedInt64 is like Int64 but its arithmetic wraps around silently on
// overflow. It trades correctness for speed and must only be used where
// operands are known to be small.
type UncheckedInt64 = Rat[int64, UncheckedInt64Domain]

// Big is an arbitrary-precision rational number. Its arithmetic never
// overflows.
type Big = Rat[*big.Int, BigDomain]

// Shared zero and one values. Factories return these whenever the value of
// their result is 0 or 1.
var (
	Int64Zero          = Zero[int64, Int64Domain]()
	Int64One           = One[int64, Int64Domain]()
	UncheckedInt64Zero = Zero[int64, UncheckedInt64Domain]()
	UncheckedInt64One  = One[int64, UncheckedInt64Domain]()
	BigZero            = Zero[*big.Int, BigDomain]()
	BigOne             = One[*big.Int, BigDomain]()
)

// NewInt64 returns the canonical form of num/den. It fails with
// ErrInvalidArgument if den == 0, and with ErrOverflow if the canonical form
// is not representable, like 1/math.MinInt64.
func NewInt64(num, den int64) (*Int64, error) {
	return makeRat[int64, Int64Domain]("NewInt64", num, den)
}

// OfInt64 returns num/1.
func OfInt64(num int64) *Int64 {
	return canonical[int64, Int64Domain](num, 1)
}

// NewUncheckedInt64 returns the canonical form of num/den. It fails with
// ErrInvalidArgument if den == 0.
func NewUncheckedInt64(num, den int64) (*UncheckedInt64, error) {
	return makeRat[int64, UncheckedInt64Domain]("NewUncheckedInt64", num, den)
}

// OfUncheckedInt64 returns num/1.
func OfUncheckedInt64(num int64) *UncheckedInt64 {
	return canonical[int64, UncheckedInt64Domain](num, 1)
}

// NewBig returns the canonical form of num/den. It fails with ErrNilOperand if
// num or den is nil, and with ErrInvalidArgument if den == 0. The arguments
// are not retained.
func NewBig(num, den *big.Int) (*Big, error) {
	switch {
	case num == nil:
		return nil, errNil("NewBig", "numerator")
	case den == nil:
		return nil, errNil("NewBig", "denominator")
	}
	return makeRat[*big.Int, BigDomain]("NewBig", num, den)
}

// OfBig returns num/1. It fails with ErrNilOperand if num is nil. num is not
// retained.
func OfBig(num *big.Int) (*Big, error) {
	if num == nil {
		return nil, errNil("OfBig", "numerator")
	}
	return canonical[*big.Int, BigDomain](new(big.Int).Set(num), bigOne), nil
}
