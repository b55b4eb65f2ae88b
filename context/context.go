// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides contexts for chained rational computations.
//
// A Context wraps the operations of rational.Rat and catches their errors: if
// an operation fails, it returns nil and the error is recorded. Further
// operations with the context are no-ops (they simply return nil) until
// (*Context).Err is called to check for errors. This lets a sequence of
// overflow-checked operations be written without checking every step.
//
// A Context also carries a precision and a rounding mode used to convert
// rationals to decimals:
//
//	func (c *Context[T, D]) Decimal(x *rational.Rat[T, D]) decimal.Decimal
//
// is x.DecimalPrec(c.Prec(), c.Mode()).
//
// A Context is not safe for concurrent use.
package context

import (
	"math/big"

	"github.com/db47h/rational"
	"github.com/shopspring/decimal"
)

// A Context is a wrapper around Rats that facilitates management of error
// handling, and holds the precision and rounding mode of decimal conversions.
type Context[T any, D rational.Domain[T]] struct {
	prec uint32
	mode rational.RoundingMode
	err  error
}

// Int64 is a Context for rational.Int64 values.
type Int64 = Context[int64, rational.Int64Domain]

// UncheckedInt64 is a Context for rational.UncheckedInt64 values.
type UncheckedInt64 = Context[int64, rational.UncheckedInt64Domain]

// Big is a Context for rational.Big values.
type Big = Context[*big.Int, rational.BigDomain]

// New creates a new context with the given precision and rounding mode. If
// prec is 0, it will be set to rational.DefaultDecimalPrec.
func New[T any, D rational.Domain[T]](prec uint, mode rational.RoundingMode) *Context[T, D] {
	return new(Context[T, D]).SetMode(mode).SetPrec(prec)
}

// NewInt64 is New for rational.Int64 values.
func NewInt64(prec uint, mode rational.RoundingMode) *Int64 {
	return New[int64, rational.Int64Domain](prec, mode)
}

// NewUncheckedInt64 is New for rational.UncheckedInt64 values.
func NewUncheckedInt64(prec uint, mode rational.RoundingMode) *UncheckedInt64 {
	return New[int64, rational.UncheckedInt64Domain](prec, mode)
}

// NewBig is New for rational.Big values.
func NewBig(prec uint, mode rational.RoundingMode) *Big {
	return New[*big.Int, rational.BigDomain](prec, mode)
}

// Mode returns the rounding mode of c.
func (c *Context[T, D]) Mode() rational.RoundingMode {
	return c.mode
}

// Prec returns the precision of c in decimal digits.
func (c *Context[T, D]) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context[T, D]) SetMode(mode rational.RoundingMode) *Context[T, D] {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec == 0, it is set to rational.DefaultDecimalPrec.
func (c *Context[T, D]) SetPrec(prec uint) *Context[T, D] {
	// special case
	if prec == 0 {
		prec = rational.DefaultDecimalPrec
	}
	// general case
	if prec > maxPrec {
		prec = maxPrec
	}
	c.prec = uint32(prec)
	return c
}

const maxPrec = 1<<32 - 1

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context[T, D]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// apply records err if it is the first error and returns z, or nil on error.
func (c *Context[T, D]) apply(z *rational.Rat[T, D], err error) *rational.Rat[T, D] {
	if err != nil {
		c.err = err
		return nil
	}
	return z
}

// Rat returns the canonical form of num/den.
func (c *Context[T, D]) Rat(num, den T) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(rational.New[T, D](num, den))
}

// Add returns the sum x+y.
func (c *Context[T, D]) Add(x, y *rational.Rat[T, D]) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(x.Add(y))
}

// Sub returns the difference x-y.
func (c *Context[T, D]) Sub(x, y *rational.Rat[T, D]) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(x.Sub(y))
}

// Mul returns the product x*y.
func (c *Context[T, D]) Mul(x, y *rational.Rat[T, D]) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(x.Mul(y))
}

// Quo returns the quotient x/y.
func (c *Context[T, D]) Quo(x, y *rational.Rat[T, D]) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(x.Quo(y))
}

// Neg returns -x.
func (c *Context[T, D]) Neg(x *rational.Rat[T, D]) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(x.Neg())
}

// Abs returns |x|.
func (c *Context[T, D]) Abs(x *rational.Rat[T, D]) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(x.Abs())
}

// Inv returns 1/x.
func (c *Context[T, D]) Inv(x *rational.Rat[T, D]) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(x.Inv())
}

// Pow returns x**n.
func (c *Context[T, D]) Pow(x *rational.Rat[T, D], n int) *rational.Rat[T, D] {
	if c.err != nil {
		return nil
	}
	return c.apply(x.Pow(n))
}

// Cmp compares x and y like (*rational.Rat).Cmp. It returns 0 if an error
// occurred.
func (c *Context[T, D]) Cmp(x, y *rational.Rat[T, D]) int {
	if c.err != nil {
		return 0
	}
	r, err := x.Cmp(y)
	if err != nil {
		c.err = err
	}
	return r
}

// Decimal returns x rounded to c's precision using c's rounding mode. It
// returns a zero decimal if an error occurred.
func (c *Context[T, D]) Decimal(x *rational.Rat[T, D]) decimal.Decimal {
	if c.err != nil {
		return decimal.Decimal{}
	}
	if x == nil {
		c.err = &rational.Error{Op: "Decimal", Err: rational.ErrNilOperand, Msg: "operand must not be nil"}
		return decimal.Decimal{}
	}
	d, _ := x.DecimalPrec(c.Prec(), c.mode)
	return d
}
