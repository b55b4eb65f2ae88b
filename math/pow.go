package math

// Pow returns base**exp as the fraction num/den.
//
// The policy is: base == 0 yields 0/1, base == 1 or exp == 0 yields 1/1,
// exp == 1 yields base/1. Otherwise base is raised to |exp| and, if exp is
// negative, the reciprocal 1/base**|exp| is returned. The sign of den follows
// base**|exp|, so den may be negative for negative exponents.
//
// Intermediate products wrap around on overflow.
func Pow(base int64, exp int) (num, den int64) {
	num, den, _ = pow(base, exp, func(x, y int64) (int64, error) { return x * y, nil })
	return num, den
}

// PowChecked is like Pow but returns ErrOverflow as soon as a multiplication
// overflows.
func PowChecked(base int64, exp int) (num, den int64, err error) {
	return pow(base, exp, MulChecked)
}

func pow(base int64, exp int, mul func(x, y int64) (int64, error)) (num, den int64, err error) {
	switch {
	case base == 0:
		return 0, 1, nil
	case base == 1 || exp == 0:
		return 1, 1, nil
	case exp == 1:
		return base, 1, nil
	}
	n := uint64(exp)
	if exp < 0 {
		n = uint64(-exp) // exact for MinInt as well
	}
	p, err := upow(base, n, mul)
	if err != nil {
		return 0, 0, err
	}
	if exp < 0 {
		return 1, p, nil
	}
	return p, 1, nil
}

// upow returns x**n for n > 0 by square-and-multiply. z is squared only while
// higher bits of n remain, so no intermediate value exceeds |x**n| and mul
// fails exactly when the plain product x*x*...*x would.
func upow(x int64, n uint64, mul func(x, y int64) (int64, error)) (int64, error) {
	if x == -1 {
		if n%2 == 0 {
			return 1, nil
		}
		return -1, nil
	}
	var err error
	z := x
	y := int64(1)
	for n > 1 {
		if n%2 != 0 {
			if y, err = mul(y, z); err != nil {
				return 0, err
			}
		}
		if z, err = mul(z, z); err != nil {
			return 0, err
		}
		n /= 2
	}
	return mul(z, y)
}
