package math

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	for _, td := range []struct {
		a, b int64
		want uint64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{5, 0, 5},
		{-5, 0, 5},
		{12, 18, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{-12, -18, 6},
		{17, 5, 1},
		{minInt64, 0, 1 << 63},
		{minInt64, minInt64, 1 << 63},
		{minInt64, 2, 2},
		{minInt64, 3, 1},
		{maxInt64, maxInt64, maxInt64},
	} {
		if got := GCD(td.a, td.b); got != td.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", td.a, td.b, got, td.want)
		}
	}
}

func TestGCDChecked(t *testing.T) {
	g, err := GCDChecked(-12, 18)
	require.NoError(t, err)
	assert.Equal(t, int64(6), g)

	g, err = GCDChecked(minInt64, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(2), g)

	_, err = GCDChecked(minInt64, 0)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = GCDChecked(minInt64, minInt64)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestPow(t *testing.T) {
	for _, td := range []struct {
		base     int64
		exp      int
		num, den int64
	}{
		{0, 0, 0, 1},
		{0, -3, 0, 1},
		{1, 100, 1, 1},
		{7, 0, 1, 1},
		{7, 1, 7, 1},
		{2, 10, 1024, 1},
		{-2, 3, -8, 1},
		{-2, -3, 1, -8},
		{2, -2, 1, 4},
		{-1, 1 << 40, 1, 1},
		{-1, 1<<40 + 1, -1, 1},
		{3, 39, 4052555153018976267, 1},
		{2, 64, 0, 1}, // wraps
	} {
		num, den := Pow(td.base, td.exp)
		if num != td.num || den != td.den {
			t.Errorf("Pow(%d, %d) = %d/%d, want %d/%d", td.base, td.exp, num, den, td.num, td.den)
		}
	}
}

func TestPowChecked(t *testing.T) {
	for _, td := range []struct {
		base     int64
		exp      int
		num, den int64
		err      error
	}{
		{2, 62, 1 << 62, 1, nil},
		{-2, 63, minInt64, 1, nil},
		{2, 63, 0, 0, ErrOverflow},
		{3, 39, 4052555153018976267, 1, nil},
		{3, 40, 0, 0, ErrOverflow},
		{10, -18, 1, 1000000000000000000, nil},
		{10, -19, 0, 0, ErrOverflow},
		{-1, -(1 << 62), 1, 1, nil},
	} {
		num, den, err := PowChecked(td.base, td.exp)
		if !errors.Is(err, td.err) {
			t.Errorf("PowChecked(%d, %d): got error %v, want %v", td.base, td.exp, err, td.err)
			continue
		}
		if num != td.num || den != td.den {
			t.Errorf("PowChecked(%d, %d) = %d/%d, want %d/%d", td.base, td.exp, num, den, td.num, td.den)
		}
	}
}

func TestChecked(t *testing.T) {
	type op func(x, y int64) (int64, error)
	neg := func(x, _ int64) (int64, error) { return NegChecked(x) }
	abs := func(x, _ int64) (int64, error) { return AbsChecked(x) }
	for _, td := range []struct {
		name string
		f    op
		x, y int64
		want int64
		err  error
	}{
		{"add", AddChecked, 1, 2, 3, nil},
		{"add", AddChecked, maxInt64, 1, 0, ErrOverflow},
		{"add", AddChecked, minInt64, -1, 0, ErrOverflow},
		{"add", AddChecked, maxInt64, minInt64, -1, nil},
		{"sub", SubChecked, 1, 2, -1, nil},
		{"sub", SubChecked, minInt64, 1, 0, ErrOverflow},
		{"sub", SubChecked, 0, minInt64, 0, ErrOverflow},
		{"sub", SubChecked, -1, minInt64, maxInt64, nil},
		{"mul", MulChecked, 0, minInt64, 0, nil},
		{"mul", MulChecked, -3, 7, -21, nil},
		{"mul", MulChecked, maxInt64, 2, 0, ErrOverflow},
		{"mul", MulChecked, minInt64, -1, 0, ErrOverflow},
		{"mul", MulChecked, -1, minInt64, 0, ErrOverflow},
		{"mul", MulChecked, 1 << 31, 1 << 31, 1 << 62, nil},
		{"mul", MulChecked, 1 << 32, 1 << 31, 0, ErrOverflow},
		{"neg", neg, minInt64, 0, 0, ErrOverflow},
		{"neg", neg, maxInt64, 0, -maxInt64, nil},
		{"abs", abs, -5, 0, 5, nil},
		{"abs", abs, minInt64, 0, 0, ErrOverflow},
	} {
		got, err := td.f(td.x, td.y)
		if td.err != nil {
			assert.ErrorIs(t, err, td.err, "%s(%d, %d)", td.name, td.x, td.y)
			continue
		}
		require.NoError(t, err, "%s(%d, %d)", td.name, td.x, td.y)
		assert.Equal(t, td.want, got, "%s(%d, %d)", td.name, td.x, td.y)
	}
}

func BenchmarkPowChecked(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = PowChecked(3, 39)
	}
}
