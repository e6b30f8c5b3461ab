package arar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ararpy/arar"
	"github.com/katalvlaran/ararpy/constants"
	"github.com/katalvlaran/ararpy/ufloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lambdaK = 5.543e-10

// TestAgeEquation_Value checks t = ln(1+JF)/λk in Ma.
func TestAgeEquation_Value(t *testing.T) {
	age := arar.AgeEquation(arar.FromComponents(0.01, 0), arar.FromComponents(10, 0.1), false, nil)

	assert.InDelta(t, math.Log(1.1)/lambdaK/1e6, age.Nominal(), 1e-9)
	assert.InDelta(t, 0.01*0.1/(lambdaK*1.1)/1e6, age.StdDev(), 1e-9)
}

// TestAgeEquation_DecayError adds the λk contribution only on request.
func TestAgeEquation_DecayError(t *testing.T) {
	c := constants.Default()
	j, f := ufloat.New(0.01, 0), ufloat.New(10, 0)

	without := arar.AgeEquation(arar.FromQuantity(j), arar.FromQuantity(f), false, c)
	with := arar.AgeEquation(arar.FromQuantity(j), arar.FromQuantity(f), true, c)

	assert.Equal(t, 0.0, without.StdDev())
	assert.Equal(t, without.Nominal(), with.Nominal())
	rel := c.LambdaK().StdDev() / c.LambdaK().Nominal()
	assert.InDelta(t, rel*with.Nominal(), with.StdDev(), 1e-9)
}

// TestAgeEquation_Operands accepts every operand form and rejects garbage.
func TestAgeEquation_Operands(t *testing.T) {
	want := math.Log(1.1) / lambdaK / 1e6

	for name, pair := range map[string][2]arar.Operand{
		"components": {arar.FromComponents(0.01, 0.0001), arar.FromComponents(10, 0.1)},
		"text":       {arar.FromText("0.01+/-0.0001"), arar.FromText("10±0.1")},
		"quantity":   {arar.FromQuantity(ufloat.New(0.01, 0.0001)), arar.FromQuantity(ufloat.New(10, 0.1))},
	} {
		age := arar.AgeEquation(pair[0], pair[1], false, nil)
		assert.InDelta(t, want, age.Nominal(), 1e-9, name)
	}

	for name, op := range map[string]arar.Operand{
		"unparsable": arar.FromText("ten"),
		"negative σ": arar.FromComponents(10, -1),
		"NaN":        arar.FromComponents(math.NaN(), 0),
		"zero":       {},
	} {
		_, err := op.Value()
		assert.ErrorIs(t, err, arar.ErrInvalidOperand, name)

		age := arar.AgeEquation(arar.FromComponents(0.01, 0), op, false, nil)
		assert.Equal(t, 0.0, age.Nominal(), name)
		assert.True(t, age.IsExact(), name)
	}
}

// TestAgeEquation_InvalidLog returns zero for 1 + JF ≤ 0.
func TestAgeEquation_InvalidLog(t *testing.T) {
	for _, f := range []float64{-100, -1000} {
		age := arar.AgeEquation(arar.FromComponents(0.01, 0), arar.FromComponents(f, 1), false, nil)
		assert.Equal(t, 0.0, age.Nominal())
		assert.Equal(t, 0.0, age.StdDev())
	}
}

// TestAgeEquation_AgeScalar follows the configured unit.
func TestAgeEquation_AgeScalar(t *testing.T) {
	ma := arar.AgeEquation(arar.FromComponents(0.01, 0), arar.FromComponents(10, 0), false, nil)
	ka := arar.AgeEquation(arar.FromComponents(0.01, 0), arar.FromComponents(10, 0), false,
		constants.New(constants.WithAgeScalar(1e3)))

	assert.InDelta(t, ma.Nominal()*1e3, ka.Nominal(), 1e-6)
}

// TestCalculateFlux_InverseOfAge round-trips J for several monitors.
func TestCalculateFlux_InverseOfAge(t *testing.T) {
	for _, c := range []*constants.Constants{nil, constants.New(constants.WithAgeScalar(1))} {
		scalar := constants.OrDefault(c).AgeScalar()
		for _, tc := range []struct{ f, ageMa float64 }{
			{10, 28.201},
			{1.5, 1.185},
			{250, 1099},
			{0.02, 0.133},
		} {
			age := tc.ageMa * 1e6 / scalar
			j := arar.CalculateFlux(arar.FromComponents(tc.f, 0), arar.FromComponents(age, 0), c)
			require.Greater(t, j.Nominal(), 0.0)

			back := arar.AgeEquation(arar.FromQuantity(j), arar.FromComponents(tc.f, 0), false, c)
			assert.InDelta(t, age, back.Nominal(), age*1e-10)
		}
	}
}

// TestCalculateFlux_Value matches a Fish Canyon monitor.
func TestCalculateFlux_Value(t *testing.T) {
	j := arar.CalculateFlux(arar.FromComponents(10, 0), arar.FromText("28.201+/-0.046"), nil)

	want := (math.Exp(28.201*lambdaK*1e6) - 1) / 10
	assert.InDelta(t, want, j.Nominal(), 1e-15)
	assert.Greater(t, j.StdDev(), 0.0)
}

// TestCalculateFlux_Fallbacks return J = 1±0.
func TestCalculateFlux_Fallbacks(t *testing.T) {
	for name, pair := range map[string][2]arar.Operand{
		"zero F":    {arar.FromComponents(0, 0.1), arar.FromComponents(28.2, 0)},
		"bad F":     {arar.FromText("?"), arar.FromComponents(28.2, 0)},
		"bad age":   {arar.FromComponents(10, 0), arar.FromText("")},
		"zero form": {{}, arar.FromComponents(28.2, 0)},
	} {
		j := arar.CalculateFlux(pair[0], pair[1], nil)
		assert.Equal(t, 1.0, j.Nominal(), name)
		assert.Equal(t, 0.0, j.StdDev(), name)
	}
}

// TestCalculateDecayFactor_SingleSegment reduces to T/((1 − e^{−λT})/λ).
func TestCalculateDecayFactor_SingleSegment(t *testing.T) {
	const dc, T = 0.01975, 10.0

	got := arar.CalculateDecayFactor(dc, []arar.Segment{{Power: 1, Duration: T}})
	assert.InDelta(t, T/((1-math.Exp(-dc*T))/dc), got, 1e-12)
	assert.Greater(t, got, 1.0)
}

// TestCalculateDecayFactor_Segments weights each segment by power.
func TestCalculateDecayFactor_Segments(t *testing.T) {
	const dc = 7.068e-6
	segs := []arar.Segment{
		{Power: 1, Duration: 5, Elapsed: 20},
		{Power: 0.5, Duration: 3, Elapsed: 10},
	}

	var a, b float64
	for _, s := range segs {
		a += s.Power * s.Duration
		b += s.Power * (1 - math.Exp(-dc*s.Duration)) / (dc * math.Exp(dc*s.Elapsed))
	}
	assert.InDelta(t, a/b, arar.CalculateDecayFactor(dc, segs), 1e-12)
}

// TestCalculateDecayFactor_Degenerate returns 1.
func TestCalculateDecayFactor_Degenerate(t *testing.T) {
	assert.Equal(t, 1.0, arar.CalculateDecayFactor(0.01975, nil))
	assert.Equal(t, 1.0, arar.CalculateDecayFactor(0.01975, []arar.Segment{{Power: 0, Duration: 10}}))
	assert.Equal(t, 1.0, arar.CalculateDecayFactor(0, []arar.Segment{{Power: 1, Duration: 10}}))
	assert.Equal(t, 1.0, arar.CalculateDecayFactor(0.01975, []arar.Segment{{Power: 1, Duration: 0}}))
}

// TestCalculateDecayTime inverts exponential decay.
func TestCalculateDecayTime(t *testing.T) {
	const dc = 0.01975

	got, err := arar.CalculateDecayTime(dc, math.Exp(dc*35))
	require.NoError(t, err)
	assert.InDelta(t, 35.0, got, 1e-10)

	for _, bad := range [][2]float64{{dc, 0}, {dc, -1}, {0, 2}, {dc, math.NaN()}} {
		_, err := arar.CalculateDecayTime(bad[0], bad[1])
		assert.ErrorIs(t, err, arar.ErrInvalidArgument)
	}
}
