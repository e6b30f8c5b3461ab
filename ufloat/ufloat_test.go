package ufloat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ararpy/ufloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestNew_StdDev verifies that a fresh variable reports its own σ.
func TestNew_StdDev(t *testing.T) {
	v := ufloat.New(3, 0.25)
	assert.Equal(t, 3.0, v.Nominal())
	assert.Equal(t, 0.25, v.StdDev())
	assert.Len(t, v.Variables(), 1)
	assert.False(t, v.IsExact())
}

// TestNew_NegativeStdPanics ensures invalid σ is rejected at construction.
func TestNew_NegativeStdPanics(t *testing.T) {
	assert.Panics(t, func() { ufloat.New(1, -1) })
	assert.Panics(t, func() { ufloat.New(1, math.NaN()) })
}

// TestConst_IsExact checks that constants carry no variables.
func TestConst_IsExact(t *testing.T) {
	c := ufloat.Const(7)
	assert.True(t, c.IsExact())
	assert.Empty(t, c.Variables())

	var zero ufloat.Value
	assert.Equal(t, 0.0, zero.Nominal())
	assert.Equal(t, 0.0, zero.StdDev())
}

// TestAddSub_Independent propagates σ in quadrature for independent operands.
func TestAddSub_Independent(t *testing.T) {
	a := ufloat.New(10, 3)
	b := ufloat.New(5, 4)

	s := a.Add(b)
	assert.Equal(t, 15.0, s.Nominal())
	assert.InDelta(t, 5.0, s.StdDev(), tol)

	d := a.Sub(b)
	assert.Equal(t, 5.0, d.Nominal())
	assert.InDelta(t, 5.0, d.StdDev(), tol)
}

// TestSelfCorrelation verifies that x − x is exact and x + x doubles σ.
func TestSelfCorrelation(t *testing.T) {
	x := ufloat.New(2, 0.5)

	assert.Equal(t, 0.0, x.Sub(x).StdDev(), "x - x must cancel exactly")
	assert.Empty(t, x.Sub(x).Variables(), "cancelled terms are dropped")
	assert.InDelta(t, 1.0, x.Add(x).StdDev(), tol)

	q, err := x.Div(x)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q.Nominal())
	assert.InDelta(t, 0.0, q.StdDev(), tol)
}

// TestMulDiv checks relative-error propagation for products and quotients.
func TestMulDiv(t *testing.T) {
	a := ufloat.New(10, 0.1)
	b := ufloat.New(2, 0.05)
	rel := math.Hypot(0.1/10, 0.05/2)

	p := a.Mul(b)
	assert.Equal(t, 20.0, p.Nominal())
	assert.InDelta(t, 20*rel, p.StdDev(), tol)

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, 5.0, q.Nominal())
	assert.InDelta(t, 5*rel, q.StdDev(), tol)
}

// TestDiv_ByZero ensures zero divisors return ErrDivisionByZero.
func TestDiv_ByZero(t *testing.T) {
	_, err := ufloat.New(1, 0.1).Div(ufloat.New(0, 1))
	assert.ErrorIs(t, err, ufloat.ErrDivisionByZero)

	_, err = ufloat.Const(0).Inv()
	assert.ErrorIs(t, err, ufloat.ErrDivisionByZero)
}

// TestScaleNegAddConst covers exact-coefficient helpers.
func TestScaleNegAddConst(t *testing.T) {
	a := ufloat.New(4, 0.5)

	assert.InDelta(t, 1.5, a.Scale(-3).StdDev(), tol)
	assert.Equal(t, -12.0, a.Scale(-3).Nominal())
	assert.Equal(t, -4.0, a.Neg().Nominal())
	assert.Equal(t, 0.5, a.Neg().StdDev())
	assert.Equal(t, 5.0, a.AddConst(1).Nominal())
	assert.Equal(t, 0.5, a.AddConst(1).StdDev())
	assert.Empty(t, a.Scale(0).Variables())
}

// TestSum adds many operands.
func TestSum(t *testing.T) {
	s := ufloat.Sum(ufloat.New(1, 1), ufloat.New(2, 1), ufloat.New(3, 1), ufloat.New(4, 1))
	assert.Equal(t, 10.0, s.Nominal())
	assert.InDelta(t, 2.0, s.StdDev(), tol)
	assert.Equal(t, 0.0, ufloat.Sum().Nominal())
}

// TestWithout drops selected error sources without touching the nominal.
func TestWithout(t *testing.T) {
	a := ufloat.New(10, 3)
	b := ufloat.New(5, 4)
	s := a.Add(b)

	wo := s.Without(b.Variables()...)
	assert.Equal(t, 15.0, wo.Nominal())
	assert.InDelta(t, 3.0, wo.StdDev(), tol)
	assert.InDelta(t, 5.0, s.StdDev(), tol, "original must be unchanged")
	assert.Equal(t, s, s.Without(), "no variables means identity")
}

// TestCopy_Independent checks that a copy is uncorrelated with its source.
func TestCopy_Independent(t *testing.T) {
	a := ufloat.New(2, 0.3)
	c := a.Copy()

	assert.Equal(t, a.Nominal(), c.Nominal())
	assert.InDelta(t, a.StdDev(), c.StdDev(), tol)
	assert.InDelta(t, 0.0, ufloat.Covariance(a, c), tol)
	assert.InDelta(t, 0.3*math.Sqrt2, a.Sub(c).StdDev(), tol)
}

// TestCovarianceCorrelation uses a shared variable in two derived values.
func TestCovarianceCorrelation(t *testing.T) {
	x := ufloat.New(1, 2)
	y := ufloat.New(1, 2)
	u := x.Add(y)
	v := x.Sub(y)

	assert.InDelta(t, 0.0, ufloat.Covariance(u, v), tol)
	assert.InDelta(t, 4.0, ufloat.Covariance(x, u), tol)
	assert.InDelta(t, 1/math.Sqrt2, ufloat.Correlation(x, u), tol)
	assert.Equal(t, 0.0, ufloat.Correlation(x, ufloat.Const(3)))
}

// TestDerivative exposes per-variable sensitivities.
func TestDerivative(t *testing.T) {
	x := ufloat.New(3, 0.1)
	y := ufloat.New(4, 0.1)
	p := x.Mul(y)

	assert.Equal(t, 4.0, p.Derivative(x.Variables()[0]))
	assert.Equal(t, 3.0, p.Derivative(y.Variables()[0]))
	assert.Equal(t, 0.0, x.Derivative(y.Variables()[0]))
}

// TestCmpMax compares by nominal value; ties keep the first operand.
func TestCmpMax(t *testing.T) {
	zero := ufloat.Const(0)
	neg := ufloat.New(-1, 0.5)
	pos := ufloat.New(2, 0.5)

	assert.Equal(t, -1, neg.Cmp(zero))
	assert.Equal(t, 1, pos.Cmp(zero))
	assert.Equal(t, 0, zero.Cmp(ufloat.New(0, 9)))

	assert.Equal(t, zero, ufloat.Max(zero, neg))
	assert.Equal(t, pos, ufloat.Max(zero, pos))
	assert.Equal(t, zero, ufloat.Max(zero, ufloat.New(0, 9)), "tie keeps the first operand")
}

// TestStringFormat checks the textual forms.
func TestStringFormat(t *testing.T) {
	v := ufloat.New(1.2346, 0.0123)
	assert.Equal(t, "1.2346+/-0.0123", v.String())
	assert.Equal(t, "1.235+/-0.012", fmtSprintf("%.3f", v))
	assert.Equal(t, "1.2346+/-0.0123", fmtSprintf("%v", v))
}

// TestStdDev_NonNegative exercises random-sign derivative chains.
func TestStdDev_NonNegative(t *testing.T) {
	a := ufloat.New(-3, 0.2)
	b := ufloat.New(7, 0.4)
	c := a.Mul(b).Sub(b.Scale(-2)).Neg()
	assert.GreaterOrEqual(t, c.StdDev(), 0.0)
	assert.GreaterOrEqual(t, a.Neg().StdDev(), 0.0)
}
