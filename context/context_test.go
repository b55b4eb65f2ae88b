package context

import (
	"math"
	"math/big"
	"testing"

	"github.com/db47h/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_SetPrec(t *testing.T) {
	c := NewInt64(0, rational.ToZero)
	assert.Equal(t, uint(rational.DefaultDecimalPrec), c.Prec())
	assert.Equal(t, rational.ToZero, c.Mode())
	c.SetPrec(10).SetMode(rational.AwayFromZero)
	assert.Equal(t, uint(10), c.Prec())
	assert.Equal(t, rational.AwayFromZero, c.Mode())
}

func TestContext_stickyError(t *testing.T) {
	c := NewInt64(0, rational.ToNearestEven)
	max := rational.OfInt64(math.MaxInt64)
	two := rational.OfInt64(2)

	z := c.Mul(max, two)
	assert.Nil(t, z)
	// no-ops until Err is called
	assert.Nil(t, c.Add(two, two))
	assert.Nil(t, c.Rat(1, 2))
	assert.Equal(t, 0, c.Cmp(max, two))
	assert.True(t, c.Decimal(two).IsZero())

	err := c.Err()
	require.ErrorIs(t, err, rational.ErrOverflow)
	var rerr *rational.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Mul", rerr.Op)

	// state cleared
	require.NoError(t, c.Err())
	z = c.Add(two, two)
	require.NotNil(t, z)
	assert.Equal(t, "4/1", z.String())
}

func TestContext_ops(t *testing.T) {
	c := NewInt64(4, rational.ToNearestEven)
	x := c.Rat(2, 3)
	y := c.Rat(4, 5)
	for _, td := range []struct {
		name string
		z    *rational.Int64
		want string
	}{
		{"Add", c.Add(x, y), "22/15"},
		{"Sub", c.Sub(x, y), "-2/15"},
		{"Mul", c.Mul(x, y), "8/15"},
		{"Quo", c.Quo(x, y), "5/6"},
		{"Neg", c.Neg(x), "-2/3"},
		{"Abs", c.Abs(c.Neg(x)), "2/3"},
		{"Inv", c.Inv(x), "3/2"},
		{"Pow", c.Pow(x, -2), "9/4"},
	} {
		require.NotNil(t, td.z, td.name)
		assert.Equal(t, td.want, td.z.String(), td.name)
	}
	assert.Equal(t, -1, c.Cmp(x, y))
	assert.Equal(t, "0.6667", c.Decimal(x).String())
	require.NoError(t, c.Err())

	assert.Nil(t, c.Inv(rational.Int64Zero))
	assert.ErrorIs(t, c.Err(), rational.ErrInvalidState)
	assert.Nil(t, c.Rat(1, 0))
	assert.ErrorIs(t, c.Err(), rational.ErrInvalidArgument)
	assert.Nil(t, c.Add(x, nil))
	assert.ErrorIs(t, c.Err(), rational.ErrNilOperand)
	c.Decimal(nil)
	assert.ErrorIs(t, c.Err(), rational.ErrNilOperand)
}

func TestContext_Big(t *testing.T) {
	c := NewBig(50, rational.ToNearestEven)
	max := new(big.Int).SetInt64(math.MaxInt64)
	x := c.Rat(max, big.NewInt(1))
	z := c.Mul(x, x)
	require.NoError(t, c.Err())
	assert.Equal(t, "85070591730234615847396907784232501249/1", z.String())
	assert.Equal(t, "85070591730234615847396907784232501249", c.Decimal(z).String())
}

func TestContext_Unchecked(t *testing.T) {
	c := NewUncheckedInt64(0, rational.ToNearestEven)
	z := c.Mul(rational.OfUncheckedInt64(math.MaxInt64), rational.OfUncheckedInt64(2))
	require.NoError(t, c.Err())
	assert.Equal(t, "-2/1", z.String())
}
