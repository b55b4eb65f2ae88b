// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements arithmetic and ordering of Rats.

package rational

import "math/bits"

const minInt = -1 << (bits.UintSize - 1)

// calc chains domain operations and keeps the first error. Once an error is
// recorded, further operations are no-ops.
type calc[T any, D Domain[T]] struct {
	d   D
	err error
}

func (c *calc[T, D]) add(x, y T) T {
	if c.err != nil {
		return x
	}
	z, err := c.d.Add(x, y)
	c.err = err
	return z
}

func (c *calc[T, D]) sub(x, y T) T {
	if c.err != nil {
		return x
	}
	z, err := c.d.Sub(x, y)
	c.err = err
	return z
}

func (c *calc[T, D]) mul(x, y T) T {
	if c.err != nil {
		return x
	}
	z, err := c.d.Mul(x, y)
	c.err = err
	return z
}

// Neg returns -x.
func (x *Rat[T, D]) Neg() (*Rat[T, D], error) {
	var d D
	num, den := x.parts()
	if d.Sign(num) == 0 {
		return Zero[T, D](), nil
	}
	n, err := d.Neg(num)
	if err != nil {
		return nil, newError("Neg", err, "-(%s)", x)
	}
	return canonical[T, D](n, den), nil
}

// Abs returns |x|.
func (x *Rat[T, D]) Abs() (*Rat[T, D], error) {
	var d D
	num, den := x.parts()
	if d.Sign(num) >= 0 {
		return canonical[T, D](num, den), nil
	}
	n, err := d.Abs(num)
	if err != nil {
		return nil, newError("Abs", err, "|%s|", x)
	}
	return canonical[T, D](n, den), nil
}

// Add returns the sum x+y.
func (x *Rat[T, D]) Add(y *Rat[T, D]) (*Rat[T, D], error) {
	if y == nil {
		return nil, errNil("Add", "summand")
	}
	xn, xd := x.parts()
	yn, yd := y.parts()
	var c calc[T, D]
	num := c.add(c.mul(yd, xn), c.mul(xd, yn))
	den := c.mul(xd, yd)
	if c.err != nil {
		return nil, newError("Add", c.err, "%s + %s", x, y)
	}
	return makeRat[T, D]("Add", num, den)
}

// Sub returns the difference x-y.
func (x *Rat[T, D]) Sub(y *Rat[T, D]) (*Rat[T, D], error) {
	if y == nil {
		return nil, errNil("Sub", "subtrahend")
	}
	xn, xd := x.parts()
	yn, yd := y.parts()
	var c calc[T, D]
	num := c.sub(c.mul(yd, xn), c.mul(xd, yn))
	den := c.mul(xd, yd)
	if c.err != nil {
		return nil, newError("Sub", c.err, "%s - %s", x, y)
	}
	return makeRat[T, D]("Sub", num, den)
}

// Mul returns the product x*y.
func (x *Rat[T, D]) Mul(y *Rat[T, D]) (*Rat[T, D], error) {
	if y == nil {
		return nil, errNil("Mul", "multiplier")
	}
	xn, xd := x.parts()
	yn, yd := y.parts()
	var c calc[T, D]
	num := c.mul(xn, yn)
	den := c.mul(xd, yd)
	if c.err != nil {
		return nil, newError("Mul", c.err, "%s * %s", x, y)
	}
	return makeRat[T, D]("Mul", num, den)
}

// Quo returns the quotient x/y. It returns an error wrapping
// ErrInvalidArgument if y == 0.
func (x *Rat[T, D]) Quo(y *Rat[T, D]) (*Rat[T, D], error) {
	if y == nil {
		return nil, errNil("Quo", "divisor")
	}
	if !y.IsInvertible() {
		return nil, newError("Quo", ErrInvalidArgument, "divisor must be invertible but was %s", y)
	}
	xn, xd := x.parts()
	yn, yd := y.parts()
	var c calc[T, D]
	num := c.mul(xn, yd)
	den := c.mul(xd, yn)
	if c.err != nil {
		return nil, newError("Quo", c.err, "%s / %s", x, y)
	}
	return makeRat[T, D]("Quo", num, den)
}

// Inv returns 1/x. It returns an error wrapping ErrInvalidState if x == 0.
func (x *Rat[T, D]) Inv() (*Rat[T, D], error) {
	if !x.IsInvertible() {
		return nil, newError("Inv", ErrInvalidState, "receiver must be invertible but was %s", x)
	}
	num, den := x.parts()
	return makeRat[T, D]("Inv", den, num)
}

// Pow returns x**n.
//
// For n > 0, numerator and denominator are raised to n independently; they
// stay coprime so no reduction takes place. x**0 is 1 for any x, including 0.
// For n < 0, x**-n is computed first and the result is inverted once. A zero x
// with n < 0 returns an error wrapping ErrInvalidState.
func (x *Rat[T, D]) Pow(n int) (*Rat[T, D], error) {
	switch {
	case n == 0:
		return One[T, D](), nil
	case n == 1:
		num, den := x.parts()
		return canonical[T, D](num, den), nil
	case n < 0:
		if !x.IsInvertible() {
			return nil, newError("Pow", ErrInvalidState, "%s is not invertible and cannot be raised to %d", x, n)
		}
		if n == minInt {
			// -n overflows: x**n = x**(n+1) / x
			p, err := x.Pow(n + 1)
			if err != nil {
				return nil, err
			}
			return p.Quo(x)
		}
		p, err := x.Pow(-n)
		if err != nil {
			return nil, err
		}
		return p.Inv()
	}
	var d D
	num, den := x.parts()
	pn, err := d.Pow(num, n)
	if err != nil {
		return nil, newError("Pow", err, "(%s)**%d", x, n)
	}
	pd, err := d.Pow(den, n)
	if err != nil {
		return nil, newError("Pow", err, "(%s)**%d", x, n)
	}
	return canonical[T, D](pn, pd), nil
}

// Inc returns x+1.
func (x *Rat[T, D]) Inc() (*Rat[T, D], error) { return x.Add(One[T, D]()) }

// Dec returns x-1.
func (x *Rat[T, D]) Dec() (*Rat[T, D], error) { return x.Sub(One[T, D]()) }

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Operands of equal sign are compared by cross-multiplication num(x)*den(y)
// against num(y)*den(x). In a checked domain, an overflowing product returns
// an error wrapping ErrOverflow; the result is never computed from wrapped
// products.
func (x *Rat[T, D]) Cmp(y *Rat[T, D]) (int, error) {
	if y == nil {
		return 0, errNil("Cmp", "other")
	}
	if x == y {
		return 0, nil
	}
	sx, sy := x.Sign(), y.Sign()
	switch {
	case sx < sy:
		return -1, nil
	case sx > sy:
		return 1, nil
	case sx == 0:
		return 0, nil
	}
	var c calc[T, D]
	xn, xd := x.parts()
	yn, yd := y.parts()
	l, r := c.mul(xn, yd), c.mul(yn, xd)
	if c.err != nil {
		return 0, newError("Cmp", c.err, "%s <=> %s", x, y)
	}
	return c.d.Cmp(l, r), nil
}

// Less reports whether x < y.
func (x *Rat[T, D]) Less(y *Rat[T, D]) (bool, error) {
	if y == nil {
		return false, errNil("Less", "other")
	}
	c, err := x.Cmp(y)
	return c < 0, err
}

// LessEq reports whether x <= y.
func (x *Rat[T, D]) LessEq(y *Rat[T, D]) (bool, error) {
	if y == nil {
		return false, errNil("LessEq", "other")
	}
	c, err := x.Cmp(y)
	return err == nil && c <= 0, err
}

// Greater reports whether x > y.
func (x *Rat[T, D]) Greater(y *Rat[T, D]) (bool, error) {
	if y == nil {
		return false, errNil("Greater", "other")
	}
	c, err := x.Cmp(y)
	return c > 0, err
}

// GreaterEq reports whether x >= y.
func (x *Rat[T, D]) GreaterEq(y *Rat[T, D]) (bool, error) {
	if y == nil {
		return false, errNil("GreaterEq", "other")
	}
	c, err := x.Cmp(y)
	return err == nil && c >= 0, err
}

// Min returns the smaller of x and y, or x if they are equal.
func (x *Rat[T, D]) Min(y *Rat[T, D]) (*Rat[T, D], error) {
	if y == nil {
		return nil, errNil("Min", "other")
	}
	le, err := x.LessEq(y)
	switch {
	case err != nil:
		return nil, err
	case le:
		return x, nil
	}
	return y, nil
}

// Max returns the larger of x and y, or x if they are equal.
func (x *Rat[T, D]) Max(y *Rat[T, D]) (*Rat[T, D], error) {
	if y == nil {
		return nil, errNil("Max", "other")
	}
	ge, err := x.GreaterEq(y)
	switch {
	case err != nil:
		return nil, err
	case ge:
		return x, nil
	}
	return y, nil
}
