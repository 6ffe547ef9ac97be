package rational

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRationalAdd(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c r64
	}{
		{q(6, 10), q(1, 10), q(7, 10)},
		{q(1, 2), q(1, 3), q(5, 6)},
		{q(-1, 2), q(1, 2), q(0, 1)},
		{q(1, 0), q(1, 2), q(1, 0)},
		{q(1, 0), q(-1, 0), q(0, 0)},
		{q(0, 0), q(3, 4), q(0, 0)},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			require.Equal(t, tc.c, tc.a.Add(tc.b))
			require.Equal(t, tc.c, tc.b.Add(tc.a))
		})
	}
}

func TestRationalSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c r64
	}{
		{q(1, 2), q(1, 3), q(1, 6)},
		{q(1, 3), q(1, 2), q(-1, 6)},
		{q(3, 4), q(3, 4), q(0, 1)},
		{q(-1, 4), q(-3, 4), q(1, 2)},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			require.Equal(t, tc.c, tc.a.Sub(tc.b))
			require.Equal(t, tc.c, tc.a.Add(tc.b.Neg()))
		})
	}
}

func TestRationalSubUnsigned(t *testing.T) {
	require.Equal(t, New[uint8](1, 6), New[uint8](1, 2).Sub(New[uint8](1, 3)))
	require.Equal(t, New[uint](1, 2), New[uint](5, 2).SubInt(2))
	require.Equal(t, New[uint32](3, 2), IntSub[uint32](2, New[uint32](1, 2)))

	// 1/3 - 1/2 underflows: 2 - 3 wraps over the common denominator 6.
	under := New[uint8](1, 3).Sub(New[uint8](1, 2))
	require.Equal(t, uint8(255), under.Num())
	require.Equal(t, uint8(6), under.Den())
}

func TestRationalMul(t *testing.T) {
	require.Equal(t, q(6, 5), q(3, 5).MulInt(2))
	require.Equal(t, q(1, 2), q(2, 3).Mul(q(3, 4)))
	require.Equal(t, q(1, 1), q(-1, 2).MulInt(-2))
	require.Equal(t, q(0, 0), q(1, 0).Mul(q(0, 1)))
	require.Equal(t, q(-1, 0), q(1, 0).Mul(q(-2, 3)))
}

func TestRationalQuo(t *testing.T) {
	require.Equal(t, q(3, 10), q(3, 5).QuoInt(2))
	require.Equal(t, q(-3, 10), q(3, 5).QuoInt(-2))
	require.Equal(t, q(-2, 1), q(1, 2).Quo(q(-1, 4)))
	require.Equal(t, q(1, 0), q(1, 2).Quo(q(0, 1)))
	require.Equal(t, q(-1, 0), q(-1, 2).Quo(q(0, 1)))
	require.Equal(t, q(0, 0), q(0, 1).Quo(q(0, 1)))
}

func TestRationalQuoIntByZero(t *testing.T) {
	require.Panics(t, func() { q(1, 2).QuoInt(0) })

	err := Try(func() { q(1, 2).QuoInt(0) })
	require.True(t, errors.Is(err, ErrDivisionByZero))

	r := q(1, 2)
	err = Try(func() { r.QuoIntAssign(0) })
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.Equal(t, q(1, 2), r)
}

func TestRationalPow(t *testing.T) {
	for idx, tc := range []struct {
		a r64
		e int
		c r64
	}{
		{q(2, 3), 2, q(4, 9)},
		{q(2, 3), -2, q(9, 4)},
		{q(-1, 2), 3, q(-1, 8)},
		{q(-2, 3), -1, q(-3, 2)},
		{q(5, 7), 0, q(1, 1)},
		{q(5, 7), 1, q(5, 7)},
		{q(0, 1), -1, q(1, 0)},
		{q(1, 0), 2, q(1, 0)},
		{q(1, 1), math.MinInt, q(1, 1)},
		{q(-1, 1), math.MinInt, q(1, 1)},
		{q(1, 1), math.MaxInt, q(1, 1)},
		{q(-1, 1), math.MaxInt, q(-1, 1)},
	} {
		t.Run(fmt.Sprintf("%d/%s^%d=%s", idx, tc.a, tc.e, tc.c), func(t *testing.T) {
			require.Equal(t, tc.c, tc.a.Pow(tc.e))
		})
	}
}

func TestRationalPowMinExponent(t *testing.T) {
	var r r64
	require.NoError(t, Try(func() { r = q(1, 2).Pow(math.MinInt) }))
	require.True(t, r.IsNormalized())

	r = q(-1, 3)
	r.PowAssign(math.MinInt)
	require.True(t, r.IsNormalized())
}

func TestRationalPowFloat(t *testing.T) {
	require.Equal(t, 0.5, q(1, 4).PowFloat(0.5))
	require.Equal(t, 3.0, q(9, 1).PowFloat(0.5))
}

func TestRationalNeg(t *testing.T) {
	require.Equal(t, q(-1, 2), q(1, 2).Neg())
	require.Equal(t, q(1, 2), q(1, 2).Neg().Neg())
	require.Equal(t, q(-1, 0), q(1, 0).Neg())
	require.Equal(t, q(3, 4), q(-3, 4).Abs())
	require.Equal(t, q(-4, 3), q(-3, 4).Inv())
	require.Equal(t, q(1, 0), q(0, 1).Inv())
}

func TestRationalReflected(t *testing.T) {
	require.Equal(t, q(5, 2), IntAdd(1, q(3, 2)))
	require.Equal(t, q(3, 2), IntSub(2, q(1, 2)))
	require.Equal(t, q(9, 2), IntQuo(3, q(2, 3)))
	require.Equal(t, q(3, 2), IntMul(4, q(3, 8)))
	require.Equal(t, q(-2, 1), IntQuo(1, q(-1, 2)))
	require.Equal(t, q(1, 0), IntQuo(5, q(0, 1)))
}

func TestRationalAssign(t *testing.T) {
	r := q(1, 2)
	r.AddAssign(q(1, 3)).MulIntAssign(6)
	require.Equal(t, q(5, 1), r)

	r.SubAssign(q(1, 2))
	require.Equal(t, q(9, 2), r)
	r.QuoAssign(q(3, 1))
	require.Equal(t, q(3, 2), r)
	r.MulAssign(q(4, 9))
	require.Equal(t, q(2, 3), r)
	r.PowAssign(-2)
	require.Equal(t, q(9, 4), r)
	r.AddIntAssign(1)
	require.Equal(t, q(13, 4), r)
	r.SubIntAssign(3)
	require.Equal(t, q(1, 4), r)
	r.QuoIntAssign(2)
	require.Equal(t, q(1, 8), r)
}

// Every operation must hand back a normalized value.
func TestRationalInvariant(t *testing.T) {
	var values []Rational[int16]
	for n := int16(-6); n <= 6; n++ {
		for d := int16(0); d <= 6; d++ {
			values = append(values, New(n, d))
		}
	}

	check := func(op string, a, b, r Rational[int16]) {
		require.True(t, r.IsNormalized(), "%s %s %s = %v/%v", a, op, b, r.Num(), r.Den())
	}

	for _, a := range values {
		check("neg", a, a, a.Neg())
		check("abs", a, a, a.Abs())
		check("inv", a, a, a.Inv())
		for e := -3; e <= 3; e++ {
			check("pow", a, FromInt(int16(e)), a.Pow(e))
		}
		for _, b := range values {
			check("+", a, b, a.Add(b))
			check("-", a, b, a.Sub(b))
			check("*", a, b, a.Mul(b))
			check("/", a, b, a.Quo(b))
			check("int+", a, b, IntAdd(b.Num(), a))
			check("int-", a, b, IntSub(b.Num(), a))
			check("int/", a, b, IntQuo(b.Num(), a))

			check("+int", a, b, a.AddInt(b.Num()))
			check("-int", a, b, a.SubInt(b.Num()))
			check("*int", a, b, a.MulInt(b.Num()))
			if b.Num() != 0 {
				check("/int", a, b, a.QuoInt(b.Num()))
			}

			for _, step := range []struct {
				op    string
				apply func(r *Rational[int16])
			}{
				{"+=", func(r *Rational[int16]) { r.AddAssign(b) }},
				{"-=", func(r *Rational[int16]) { r.SubAssign(b) }},
				{"*=", func(r *Rational[int16]) { r.MulAssign(b) }},
				{"/=", func(r *Rational[int16]) { r.QuoAssign(b) }},
				{"^=", func(r *Rational[int16]) { r.PowAssign(int(b.Num()) % 3) }},
				{"+=int", func(r *Rational[int16]) { r.AddIntAssign(b.Num()) }},
				{"-=int", func(r *Rational[int16]) { r.SubIntAssign(b.Num()) }},
				{"*=int", func(r *Rational[int16]) { r.MulIntAssign(b.Num()) }},
				{"/=int", func(r *Rational[int16]) {
					if b.Num() != 0 {
						r.QuoIntAssign(b.Num())
					}
				}},
			} {
				// Applied twice to cover an already-mutated receiver.
				acc := a
				step.apply(&acc)
				check(step.op, a, b, acc)
				step.apply(&acc)
				check(step.op, a, b, acc)
			}
		}
	}
}
