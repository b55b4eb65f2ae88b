// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions of Rats to decimals and machine types.

package rational

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// bigParts returns x's numerator and denominator as read-only big.Ints.
func (x *Rat[T, D]) bigParts() (num, den *big.Int) {
	var d D
	n, m := x.parts()
	return d.Int(n), d.Int(m)
}

// BigRat returns x as a new big.Rat.
func (x *Rat[T, D]) BigRat() *big.Rat {
	num, den := x.bigParts()
	return new(big.Rat).SetFrac(num, den)
}

// Float64 returns the float64 value nearest to x and a bool indicating
// whether the result represents x exactly.
func (x *Rat[T, D]) Float64() (float64, bool) {
	return x.BigRat().Float64()
}

// Int64 returns the integer resulting from truncating x towards zero. If
// math.MinInt64 <= x <= math.MaxInt64, the result is Exact if x is an integer,
// and Above (x < 0) or Below (x > 0) otherwise. The result is (math.MinInt64,
// Above) for x < math.MinInt64, and (math.MaxInt64, Below) for
// x > math.MaxInt64.
func (x *Rat[T, D]) Int64() (int64, Accuracy) {
	num, den := x.bigParts()
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if !q.IsInt64() {
		if q.Sign() < 0 {
			return math.MinInt64, Above
		}
		return math.MaxInt64, Below
	}
	if r.Sign() == 0 {
		return q.Int64(), Exact
	}
	return q.Int64(), makeAcc(r.Sign() < 0)
}

// Decimal returns x rounded to scale digits after the decimal point using
// rounding mode mode. A negative scale rounds to a multiple of 10**-scale.
//
// For example, 1/3 at scale 2 is 0.33 with ToNearestEven and 0.34 with
// AwayFromZero.
func (x *Rat[T, D]) Decimal(scale int32, mode RoundingMode) (decimal.Decimal, Accuracy) {
	num, den := x.bigParts()
	coef, acc := quoRound(num, den, int64(scale), mode)
	return decimal.NewFromBigInt(coef, -scale), acc
}

// DecimalMode returns x as a decimal with the smallest scale that represents x
// exactly, which exists if the denominator of x has no prime factors other
// than 2 and 5. Otherwise x is rounded to DefaultDecimalPrec significant
// digits using rounding mode mode.
func (x *Rat[T, D]) DecimalMode(mode RoundingMode) (decimal.Decimal, Accuracy) {
	num, den := x.bigParts()
	if s, ok := terminatingScale(den); ok {
		coef, acc := quoRound(num, den, s, mode)
		return decimal.NewFromBigInt(coef, int32(-s)), acc
	}
	return x.DecimalPrec(DefaultDecimalPrec, mode)
}

// DecimalPrec returns x rounded to prec significant decimal digits using
// rounding mode mode. If prec is 0, DefaultDecimalPrec is used. Trailing zeros
// of exact results are removed down to scale 0.
func (x *Rat[T, D]) DecimalPrec(prec uint, mode RoundingMode) (decimal.Decimal, Accuracy) {
	if prec == 0 {
		prec = DefaultDecimalPrec
	}
	num, den := x.bigParts()
	if num.Sign() == 0 {
		return decimal.New(0, 0), Exact
	}
	p := int64(prec)
	// |x| is in [10**(e-1), 10**(e+1)), so scaling by 10**(p-e) yields an
	// integer part of p or p+1 digits.
	s := p - (ndigits(num) - ndigits(den))
	if q, _ := quoRound(num, den, s, ToZero); ndigits(q) > p {
		s--
	}
	coef, acc := quoRound(num, den, s, mode)
	if ndigits(coef) > p {
		// rounding carried into a new digit; the last digit is 0
		coef.Quo(coef, bigTen)
		s--
	}
	if acc == Exact {
		coef, s = trimZeros(coef, s)
	}
	return decimal.NewFromBigInt(coef, int32(-s)), acc
}

// quoRound returns num*10**scale/den rounded to an integer using mode, and the
// accuracy of the result relative to the exact quotient. den must be > 0.
func quoRound(num, den *big.Int, scale int64, mode RoundingMode) (*big.Int, Accuracy) {
	n, m := new(big.Int).Set(num), new(big.Int).Set(den)
	if scale >= 0 {
		n.Mul(n, pow10(uint64(scale)))
	} else {
		m.Mul(m, pow10(uint64(-scale)))
	}
	q, r := n.QuoRem(n, m, new(big.Int))
	if r.Sign() == 0 {
		return q, Exact
	}
	neg := r.Sign() < 0
	if !roundAway(mode, q, r, m, neg) {
		// truncated towards zero
		return q, makeAcc(neg)
	}
	if neg {
		q.Sub(q, bigOne)
	} else {
		q.Add(q, bigOne)
	}
	return q, makeAcc(!neg)
}

// roundAway reports whether the truncated quotient q with remainder r != 0 and
// divisor m must be moved one unit away from zero.
func roundAway(mode RoundingMode, q, r, m *big.Int, neg bool) bool {
	switch mode {
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !neg
	case ToNegativeInf:
		return neg
	case ToNearestEven, ToNearestAway, ToNearestZero:
		r2 := new(big.Int).Abs(r)
		switch c := r2.Lsh(r2, 1).Cmp(m); {
		case c < 0:
			return false
		case c > 0:
			return true
		}
		// tie
		switch mode {
		case ToNearestAway:
			return true
		case ToNearestZero:
			return false
		}
		return q.Bit(0) != 0
	}
	panic("rational: unknown rounding mode " + mode.String())
}

// terminatingScale returns the number of digits after the decimal point of the
// exact decimal expansion of 1/den, and false if that expansion does not
// terminate.
func terminatingScale(den *big.Int) (int64, bool) {
	m := new(big.Int).Set(den)
	twos := int64(m.TrailingZeroBits())
	m.Rsh(m, uint(twos))
	five := big.NewInt(5)
	fives := int64(0)
	q, r := new(big.Int), new(big.Int)
	for m.Cmp(bigOne) > 0 {
		q.QuoRem(m, five, r)
		if r.Sign() != 0 {
			return 0, false
		}
		m.Set(q)
		fives++
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// trimZeros removes trailing decimal zeros from coef while scale > 0.
func trimZeros(coef *big.Int, scale int64) (*big.Int, int64) {
	q, r := new(big.Int), new(big.Int)
	for scale > 0 {
		q.QuoRem(coef, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		coef.Set(q)
		scale--
	}
	return coef, scale
}
