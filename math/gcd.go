package math

// GCD returns the greatest common divisor of a and b, computed recursively as
// GCD(b, a%b) until b == 0.
//
// The result is non-negative. It is returned as an uint64 because
// GCD(MinInt64, 0) and GCD(MinInt64, MinInt64) are 1<<63, which has no int64
// representation.
func GCD(a, b int64) uint64 {
	if b == 0 {
		return abs(a)
	}
	return GCD(b, a%b)
}

// GCDChecked is like GCD but returns ErrOverflow if the result does not fit in
// an int64.
func GCDChecked(a, b int64) (int64, error) {
	if b == 0 {
		return AbsChecked(a)
	}
	return GCDChecked(b, a%b)
}
