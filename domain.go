// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import (
	"math/big"
	"math/bits"
	"strconv"

	"github.com/db47h/rational/math"
)

// A Domain provides the integer operations a Rat is built upon. T is the
// integer type. Implementations are stateless: the zero value of the domain
// type is used for all operations, and it is also the key under which the
// shared zero and one of Rat[T, D] are stored.
//
// Operations returning an error may only fail with an overflow. Values passed
// to a Domain must never be modified by it.
type Domain[T any] interface {
	comparable

	Zero() T
	One() T
	Sign(x T) int
	Cmp(x, y T) int
	// CmpAbs compares |x| and |y|. It must not overflow.
	CmpAbs(x, y T) int
	Neg(x T) (T, error)
	Abs(x T) (T, error)
	Add(x, y T) (T, error)
	Sub(x, y T) (T, error)
	Mul(x, y T) (T, error)
	// Quo returns the truncated quotient x/y. Rat only calls it with y a
	// positive divisor of x.
	Quo(x, y T) T
	// GCD returns the non-negative greatest common divisor of x and y.
	GCD(x, y T) (T, error)
	// Pow returns x**n for n > 1.
	Pow(x T, n int) (T, error)
	// IsPowerOfTwo reports whether x > 0 has exactly one bit set.
	IsPowerOfTwo(x T) bool
	// Int returns x as a *big.Int. The result must not be modified.
	Int(x T) *big.Int
	// Clone returns a copy of x that shares no memory with x.
	Clone(x T) T
	String(x T) string
}

type int64Base struct{}

func (int64Base) Zero() int64 { return 0 }
func (int64Base) One() int64 { return 1 }

func (int64Base) Sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func (int64Base) Cmp(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (int64Base) CmpAbs(x, y int64) int {
	ux, uy := uabs(x), uabs(y)
	switch {
	case ux < uy:
		return -1
	case ux > uy:
		return 1
	}
	return 0
}

func (int64Base) Quo(x, y int64) int64 { return x / y }

func (int64Base) IsPowerOfTwo(x int64) bool {
	return x > 0 && bits.OnesCount64(uint64(x)) == 1
}

func (int64Base) Int(x int64) *big.Int { return big.NewInt(x) }
func (int64Base) Clone(x int64) int64 { return x }
func (int64Base) String(x int64) string { return strconv.FormatInt(x, 10) }

func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// Int64Domain is the int64 domain with overflow-checked arithmetic. Every
// operation that overflows returns ErrOverflow.
type Int64Domain struct{ int64Base }

func (Int64Domain) Neg(x int64) (int64, error) { return math.NegChecked(x) }
func (Int64Domain) Abs(x int64) (int64, error) { return math.AbsChecked(x) }
func (Int64Domain) Add(x, y int64) (int64, error) { return math.AddChecked(x, y) }
func (Int64Domain) Sub(x, y int64) (int64, error) { return math.SubChecked(x, y) }
func (Int64Domain) Mul(x, y int64) (int64, error) { return math.MulChecked(x, y) }
func (Int64Domain) GCD(x, y int64) (int64, error) { return math.GCDChecked(x, y) }

func (Int64Domain) Pow(x int64, n int) (int64, error) {
	p, _, err := math.PowChecked(x, n)
	return p, err
}

// UncheckedInt64Domain is the int64 domain with two's complement wraparound.
// It never reports an overflow: results of operations that overflow are
// wrong. Use it only where operands are known to be small.
type UncheckedInt64Domain struct{ int64Base }

func (UncheckedInt64Domain) Neg(x int64) (int64, error) { return -x, nil }

func (UncheckedInt64Domain) Abs(x int64) (int64, error) {
	if x < 0 {
		return -x, nil
	}
	return x, nil
}

func (UncheckedInt64Domain) Add(x, y int64) (int64, error) { return x + y, nil }
func (UncheckedInt64Domain) Sub(x, y int64) (int64, error) { return x - y, nil }
func (UncheckedInt64Domain) Mul(x, y int64) (int64, error) { return x * y, nil }

func (UncheckedInt64Domain) GCD(x, y int64) (int64, error) {
	// 1<<63 becomes MinInt64, which still divides MinInt64 to 1.
	return int64(math.GCD(x, y)), nil
}

func (UncheckedInt64Domain) Pow(x int64, n int) (int64, error) {
	p, _ := math.Pow(x, n)
	return p, nil
}

// BigDomain is the arbitrary-precision domain. Its operations never fail and
// always allocate their result. A nil *big.Int is treated as 0.
type BigDomain struct{}

var bigZero = new(big.Int)

func nz(x *big.Int) *big.Int {
	if x == nil {
		return bigZero
	}
	return x
}

func (BigDomain) Zero() *big.Int { return new(big.Int) }
func (BigDomain) One() *big.Int { return big.NewInt(1) }
func (BigDomain) Sign(x *big.Int) int { return nz(x).Sign() }
func (BigDomain) Cmp(x, y *big.Int) int { return nz(x).Cmp(nz(y)) }
func (BigDomain) CmpAbs(x, y *big.Int) int { return nz(x).CmpAbs(nz(y)) }

func (BigDomain) Neg(x *big.Int) (*big.Int, error) { return new(big.Int).Neg(nz(x)), nil }
func (BigDomain) Abs(x *big.Int) (*big.Int, error) { return new(big.Int).Abs(nz(x)), nil }

func (BigDomain) Add(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Add(nz(x), nz(y)), nil
}

func (BigDomain) Sub(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Sub(nz(x), nz(y)), nil
}

func (BigDomain) Mul(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(nz(x), nz(y)), nil
}

func (BigDomain) Quo(x, y *big.Int) *big.Int { return new(big.Int).Quo(nz(x), nz(y)) }

func (BigDomain) GCD(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).GCD(nil, nil, nz(x), nz(y)), nil
}

func (BigDomain) Pow(x *big.Int, n int) (*big.Int, error) {
	return new(big.Int).Exp(nz(x), big.NewInt(int64(n)), nil), nil
}

func (BigDomain) IsPowerOfTwo(x *big.Int) bool {
	x = nz(x)
	if x.Sign() <= 0 {
		return false
	}
	n := 0
	for _, w := range x.Bits() {
		n += bits.OnesCount(uint(w))
	}
	return n == 1
}

func (BigDomain) Int(x *big.Int) *big.Int { return nz(x) }
func (BigDomain) Clone(x *big.Int) *big.Int { return new(big.Int).Set(nz(x)) }
func (BigDomain) String(x *big.Int) string { return nz(x).String() }
