package context_test

import (
	"fmt"

	"github.com/db47h/rational"
	"github.com/db47h/rational/context"
)

// solve solves the linear system
//
//	a1×x + b1×y = c1
//	a2×x + b2×y = c2
//
// using Cramer's rule. It fails if the determinant is zero, in which case the
// division by det fails, or if any intermediate result overflows. Errors are
// checked only once, at the end.
func solve(ctx *context.Int64, a1, b1, c1, a2, b2, c2 *rational.Int64) (x, y *rational.Int64, err error) {
	det := ctx.Sub(ctx.Mul(a1, b2), ctx.Mul(b1, a2))
	x = ctx.Quo(ctx.Sub(ctx.Mul(c1, b2), ctx.Mul(b1, c2)), det)
	y = ctx.Quo(ctx.Sub(ctx.Mul(a1, c2), ctx.Mul(c1, a2)), det)
	if err = ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("error solving system: %w", err)
	}
	return x, y, nil
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.NewInt64(6, rational.ToNearestEven)
	x, y, err := solve(ctx,
		ctx.Rat(1, 2), ctx.Rat(1, 3), rational.Int64One,
		ctx.Rat(1, 4), ctx.Rat(-1, 5), ctx.Rat(2, 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("x = %s ≈ %s, y = %s ≈ %s\n", x.RatString(), ctx.Decimal(x), y.RatString(), ctx.Decimal(y))

	_, _, err = solve(ctx,
		rational.OfInt64(1), rational.OfInt64(2), rational.OfInt64(3),
		rational.OfInt64(2), rational.OfInt64(4), rational.OfInt64(6))
	if err != nil {
		// the system has no unique solution
		fmt.Println(err)
		return
	}
	//
	// Output:
	// x = 76/33 ≈ 2.30303, y = -5/11 ≈ -0.454545
	// error solving system: rational: Quo: invalid argument: divisor must be invertible but was 0/1
}
