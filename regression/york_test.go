package regression_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ararpy/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pearsonYork is Pearson's (1901) data with York's (1966) weights.
func pearsonYork() regression.Data {
	x := []float64{0.0, 0.9, 1.8, 2.6, 3.3, 4.4, 5.2, 6.1, 6.5, 7.4}
	y := []float64{5.9, 5.4, 4.4, 4.6, 3.5, 3.7, 2.8, 2.8, 2.4, 1.5}
	wx := []float64{1000, 1000, 500, 800, 200, 80, 60, 20, 1.8, 1}
	wy := []float64{1, 1.8, 4, 8, 20, 20, 70, 70, 100, 500}

	d := regression.Data{X: x, Y: y, XErr: make([]float64, len(x)), YErr: make([]float64, len(x))}
	for i := range x {
		d.XErr[i] = 1 / math.Sqrt(wx[i])
		d.YErr[i] = 1 / math.Sqrt(wy[i])
	}

	return d
}

// TestYork_Pearson reproduces the published benchmark solution.
func TestYork_Pearson(t *testing.T) {
	fit, err := regression.NewYork().Fit(pearsonYork())
	require.NoError(t, err)

	assert.InDelta(t, -0.480533, fit.Slope, 1e-6)
	assert.InDelta(t, 5.479910, fit.Intercept, 1e-6)
	assert.InDelta(t, 0.057985, fit.SlopeErr, 1e-6)
	assert.InDelta(t, 0.294971, fit.InterceptErr, 1e-6)
	assert.InDelta(t, 1.483294, fit.MSWD, 1e-6)
	assert.Equal(t, 10, fit.N)
	assert.Less(t, fit.Covariance, 0.0)
	assert.Greater(t, fit.Iterations, 1)

	xi, xe := fit.XIntercept()
	assert.InDelta(t, 5.479910/0.480533, xi, 1e-4)
	assert.Greater(t, xe, 0.0)
}

// TestYork_ExactLine recovers a noiseless line with zero MSWD.
func TestYork_ExactLine(t *testing.T) {
	d := regression.Data{
		X:    []float64{1, 2, 3, 4, 5},
		Y:    []float64{5, 8, 11, 14, 17},
		XErr: []float64{0.1, 0.1, 0.2, 0.1, 0.3},
		YErr: []float64{0.2, 0.1, 0.1, 0.3, 0.2},
	}

	fit, err := regression.NewYork().Fit(d)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, fit.Slope, 1e-12)
	assert.InDelta(t, 2.0, fit.Intercept, 1e-12)
	assert.InDelta(t, 0.0, fit.MSWD, 1e-20)
	assert.InDelta(t, 11.0, fit.PredictY(3), 1e-12)

	xi, _ := fit.XIntercept()
	assert.InDelta(t, -2.0/3, xi, 1e-12)
}

// TestYork_TwoPoints passes through both points without MSWD.
func TestYork_TwoPoints(t *testing.T) {
	fit, err := regression.NewYork().Fit(regression.Data{
		X: []float64{0, 1}, Y: []float64{1, 3},
		XErr: []float64{0.1, 0.1}, YErr: []float64{0.1, 0.1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Slope, 1e-12)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-12)
	assert.Equal(t, 0.0, fit.MSWD)
}

// TestYork_SharedDenominator derives ρ from ratio components.
func TestYork_SharedDenominator(t *testing.T) {
	d := pearsonYork()
	n := d.Len()
	d.D, d.DErr = make([]float64, n), make([]float64, n)
	d.XN, d.XNErr = make([]float64, n), make([]float64, n)
	d.YN, d.YNErr = make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		// 1 % relative error on every component ⇒ ρ = 0.5
		d.D[i], d.DErr[i] = 10, 0.1
		d.XN[i], d.XNErr[i] = 5, 0.05
		d.YN[i], d.YNErr[i] = 2, 0.02
	}
	derived, err := regression.NewYork().Fit(d)
	require.NoError(t, err)

	explicit := pearsonYork()
	explicit.Rho = make([]float64, n)
	for i := range explicit.Rho {
		explicit.Rho[i] = 0.5
	}
	want, err := regression.NewYork().Fit(explicit)
	require.NoError(t, err)

	assert.InDelta(t, want.Slope, derived.Slope, 1e-9)
	assert.InDelta(t, want.SlopeErr, derived.SlopeErr, 1e-9)

	plain, err := regression.NewYork().Fit(pearsonYork())
	require.NoError(t, err)
	assert.NotEqual(t, plain.Slope, derived.Slope)
}

// TestYork_Errors covers invalid data and iteration limits.
func TestYork_Errors(t *testing.T) {
	y := regression.NewYork()

	_, err := y.Fit(regression.Data{X: []float64{1}, Y: []float64{1}, XErr: []float64{1}, YErr: []float64{1}})
	assert.ErrorIs(t, err, regression.ErrTooFewPoints)

	_, err = y.Fit(regression.Data{X: []float64{1, 2}, Y: []float64{1}, XErr: []float64{1, 1}, YErr: []float64{1, 1}})
	assert.ErrorIs(t, err, regression.ErrLengthMismatch)

	_, err = y.Fit(regression.Data{X: []float64{1, 2}, Y: []float64{1, 2}, XErr: []float64{0, 1}, YErr: []float64{1, 1}})
	assert.ErrorIs(t, err, regression.ErrZeroError)

	_, err = y.Fit(regression.Data{X: []float64{1, math.NaN()}, Y: []float64{1, 2}, XErr: []float64{1, 1}, YErr: []float64{1, 1}})
	assert.ErrorIs(t, err, regression.ErrBadInput)

	_, err = y.Fit(regression.Data{X: []float64{1, 2}, Y: []float64{1, 2}, XErr: []float64{1, 1}, YErr: []float64{1, 1}, Rho: []float64{0, 2}})
	assert.ErrorIs(t, err, regression.ErrBadInput)

	_, err = y.Fit(regression.Data{X: []float64{3, 3, 3}, Y: []float64{1, 2, 3}, XErr: []float64{1, 1, 1}, YErr: []float64{1, 1, 1}})
	assert.ErrorIs(t, err, regression.ErrDegenerate)

	_, err = regression.NewYork(regression.WithMaxIterations(1)).Fit(pearsonYork())
	assert.ErrorIs(t, err, regression.ErrNotConverged)
}

// TestYork_Options applies and validates options.
func TestYork_Options(t *testing.T) {
	y := regression.NewYork(regression.WithTolerance(1e-9), regression.WithMaxIterations(7))
	assert.Equal(t, regression.Options{Tolerance: 1e-9, MaxIterations: 7}, y.Options())
	assert.Equal(t, regression.DefaultOptions(), regression.NewYork().Options())

	assert.Panics(t, func() { regression.NewYork(regression.WithTolerance(0)) })
	assert.Panics(t, func() { regression.NewYork(regression.WithMaxIterations(0)) })
}

// TestFit_XInterceptFlat is undefined for a zero slope.
func TestFit_XInterceptFlat(t *testing.T) {
	v, e := regression.Fit{Intercept: 1}.XIntercept()
	assert.True(t, math.IsNaN(v))
	assert.True(t, math.IsNaN(e))
}
