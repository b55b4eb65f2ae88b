// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import "sync"

// A Rat represents the quotient num/den of two integers of the domain D.
//
// Rats returned by this package are in canonical form: num and den are
// coprime, den > 0 and zero is represented as 0/1. A Rat is never modified
// after construction, so Rats can be shared freely between goroutines.
//
// The zero value for a Rat represents 0.
type Rat[T any, D Domain[T]] struct {
	num, den T
}

// constants maps a domain to its shared zero and one, stored as [2]any.
var constants sync.Map

func singletons[T any, D Domain[T]]() (zero, one *Rat[T, D]) {
	var d D
	v, ok := constants.Load(d)
	if !ok {
		v, _ = constants.LoadOrStore(d, [2]interface{}{
			&Rat[T, D]{num: d.Zero(), den: d.One()},
			&Rat[T, D]{num: d.One(), den: d.One()},
		})
	}
	c := v.([2]interface{})
	return c[0].(*Rat[T, D]), c[1].(*Rat[T, D])
}

// Zero returns the shared Rat of value 0 in domain D.
func Zero[T any, D Domain[T]]() *Rat[T, D] {
	z, _ := singletons[T, D]()
	return z
}

// One returns the shared Rat of value 1 in domain D.
func One[T any, D Domain[T]]() *Rat[T, D] {
	_, o := singletons[T, D]()
	return o
}

// New returns the canonical form of num/den. It returns an error wrapping
// ErrInvalidArgument if den is zero, and ErrOverflow if the canonical form is
// not representable in D.
//
// If the value is 0 or 1, the shared Zero or One is returned.
func New[T any, D Domain[T]](num, den T) (*Rat[T, D], error) {
	return makeRat[T, D]("New", num, den)
}

// Of returns the Rat num/1.
func Of[T any, D Domain[T]](num T) (*Rat[T, D], error) {
	var d D
	return makeRat[T, D]("Of", num, d.One())
}

func makeRat[T any, D Domain[T]](op string, num, den T) (*Rat[T, D], error) {
	var d D
	if d.Sign(den) == 0 {
		return nil, newError(op, ErrInvalidArgument, "denominator must not be 0 but was %s", d.String(den))
	}
	zero, one := singletons[T, D]()
	if d.Sign(num) == 0 {
		return zero, nil
	}
	if d.Cmp(num, den) == 0 {
		return one, nil
	}
	g, err := d.GCD(num, den)
	if err != nil {
		return nil, newError(op, err, "gcd(%s, %s)", d.String(num), d.String(den))
	}
	num, den = d.Quo(num, g), d.Quo(den, g)
	if d.Sign(den) < 0 {
		rn, rd := num, den
		if num, err = d.Neg(rn); err == nil {
			den, err = d.Neg(rd)
		}
		if err != nil {
			return nil, newError(op, err, "cannot move the sign of %s/%s to the numerator", d.String(rn), d.String(rd))
		}
	}
	return canonical[T, D](num, den), nil
}

// canonical returns num/den without reduction. num and den must be coprime
// with den > 0.
func canonical[T any, D Domain[T]](num, den T) *Rat[T, D] {
	var d D
	zero, one := singletons[T, D]()
	switch {
	case d.Sign(num) == 0:
		return zero
	case d.Cmp(num, den) == 0:
		return one
	}
	return &Rat[T, D]{num: num, den: den}
}

// parts returns x's numerator and denominator, mapping the zero value to 0/1.
func (x *Rat[T, D]) parts() (num, den T) {
	var d D
	if d.Sign(x.den) == 0 {
		return d.Zero(), d.One()
	}
	return x.num, x.den
}

// Num returns the numerator of x; it may be <= 0.
// The result is a copy and can be modified freely.
func (x *Rat[T, D]) Num() T {
	var d D
	num, _ := x.parts()
	return d.Clone(num)
}

// Den returns the denominator of x; it is always > 0.
// The result is a copy and can be modified freely.
func (x *Rat[T, D]) Den() T {
	var d D
	_, den := x.parts()
	return d.Clone(den)
}

// IsInvertible reports whether x has a reciprocal, that is x != 0.
func (x *Rat[T, D]) IsInvertible() bool { return !x.IsZero() }

// IsInteger reports whether the denominator of x is 1.
func (x *Rat[T, D]) IsInteger() bool {
	var d D
	_, den := x.parts()
	return d.Cmp(den, d.One()) == 0
}

// IsZero reports whether x == 0.
func (x *Rat[T, D]) IsZero() bool { return x.Sign() == 0 }

// IsOne reports whether x == 1.
func (x *Rat[T, D]) IsOne() bool {
	var d D
	num, den := x.parts()
	return d.Cmp(num, den) == 0
}

// IsUnitFraction reports whether the numerator of x is 1.
func (x *Rat[T, D]) IsUnitFraction() bool {
	var d D
	num, _ := x.parts()
	return d.Cmp(num, d.One()) == 0
}

// IsDyadic reports whether the denominator of x is a power of two.
func (x *Rat[T, D]) IsDyadic() bool {
	var d D
	_, den := x.parts()
	return d.IsPowerOfTwo(den)
}

// IsProper reports whether |num| < den.
func (x *Rat[T, D]) IsProper() bool {
	var d D
	num, den := x.parts()
	return d.CmpAbs(num, den) < 0
}

// IsPositive reports whether x > 0.
func (x *Rat[T, D]) IsPositive() bool { return x.Sign() > 0 }

// IsNegative reports whether x < 0.
func (x *Rat[T, D]) IsNegative() bool { return !x.IsPositive() && !x.IsZero() }

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Rat[T, D]) Sign() int {
	var d D
	num, _ := x.parts()
	return d.Sign(num)
}

// Equal reports whether x and y have the same value. A nil y is never equal.
func (x *Rat[T, D]) Equal(y *Rat[T, D]) bool {
	if x == y {
		return true
	}
	if y == nil {
		return false
	}
	var d D
	xn, xd := x.parts()
	yn, yd := y.parts()
	return d.Cmp(xn, yn) == 0 && d.Cmp(xd, yd) == 0
}

// String returns x in the form "num/den".
func (x *Rat[T, D]) String() string {
	var d D
	num, den := x.parts()
	return d.String(num) + "/" + d.String(den)
}

// RatString returns x in the form "num/den" if den != 1, and in the form
// "num" otherwise.
func (x *Rat[T, D]) RatString() string {
	if x.IsInteger() {
		var d D
		num, _ := x.parts()
		return d.String(num)
	}
	return x.String()
}
