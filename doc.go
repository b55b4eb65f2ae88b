// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rational implements exact rational arithmetic over fixed-width and
arbitrary-precision integers.

A rational number is represented by the generic type Rat[T, D], where T is
the integer type of the numerator and denominator, and D a Domain providing
the integer operations on T. Three domains are provided, each with a type
alias:

    Int64           int64, overflow-checked
    UncheckedInt64  int64, wrapping on overflow
    Big             *big.Int, never overflows

Values are always kept in canonical form: numerator and denominator are
coprime, the denominator is positive and zero is 0/1. Rats are immutable:
operations return a new value and never modify their operands or receiver.
Hence Rats can be shared between goroutines without synchronization.

Factories return the shared values Int64Zero, Int64One, BigZero, etc. whenever
the canonical value is 0 or 1. Comparing pointers is therefore a fast path for
equality, but never a substitute for Equal or Cmp.

The zero value for a Rat corresponds to 0:

    var x rational.Int64 // x is 0/1

Operations follow the naming of math/big:

    func (x *Rat[T, D]) Pred() P                      // p = pred(x)
    func (x *Rat[T, D]) Unary() (*Rat[T, D], error)   // z = unary x
    func (x *Rat[T, D]) Binary(y *Rat[T, D]) (*Rat[T, D], error) // z = x binary y

Operations that can fail return an error of type *Error wrapping one of
ErrNilOperand, ErrInvalidArgument, ErrInvalidState or ErrOverflow, to be
tested with errors.Is:

    z, err := x.Mul(y)
    if errors.Is(err, rational.ErrOverflow) {
        // fall back to Big
    }

Only Int64 can return ErrOverflow. Sub-package context provides a wrapper that
defers error checking to the end of a computation.

Rats convert to decimals (github.com/shopspring/decimal) at a fixed scale, at
a given precision, or exactly when possible, using one of the RoundingMode
constants. The returned Accuracy tells whether the decimal is Below, Exact or
Above the rational value.
*/
package rational
