// Package math provides integer primitives for the int64 rational domains:
// greatest common divisors, integer powers and overflow-checked arithmetic.
//
// Functions come in two flavors. The plain ones wrap around silently in two's
// complement arithmetic. Their *Checked counterparts return ErrOverflow
// instead of a wrapped result.
package math

import "errors"

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)

// ErrOverflow is returned by checked operations whose exact result is not
// representable as an int64.
var ErrOverflow = errors.New("integer overflow")

// AddChecked returns x+y or ErrOverflow.
func AddChecked(x, y int64) (int64, error) {
	s := x + y
	// overflow iff both operands have the same sign and the sum's sign differs
	if (x >= 0) == (y >= 0) && (s >= 0) != (x >= 0) {
		return 0, ErrOverflow
	}
	return s, nil
}

// SubChecked returns x-y or ErrOverflow.
func SubChecked(x, y int64) (int64, error) {
	d := x - y
	if (x >= 0) != (y >= 0) && (d >= 0) != (x >= 0) {
		return 0, ErrOverflow
	}
	return d, nil
}

// MulChecked returns x*y or ErrOverflow.
func MulChecked(x, y int64) (int64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	p := x * y
	if (x == -1 && y == minInt64) || (y == -1 && x == minInt64) || p/y != x {
		return 0, ErrOverflow
	}
	return p, nil
}

// NegChecked returns -x or ErrOverflow if x == MinInt64.
func NegChecked(x int64) (int64, error) {
	if x == minInt64 {
		return 0, ErrOverflow
	}
	return -x, nil
}

// AbsChecked returns |x| or ErrOverflow if x == MinInt64.
func AbsChecked(x int64) (int64, error) {
	if x < 0 {
		return NegChecked(x)
	}
	return x, nil
}

// abs returns |x| as an uint64. It is exact for MinInt64.
func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
