package regression

import (
	"errors"
	"math"
)

// Sentinel errors returned by the regression package.
var (
	// ErrTooFewPoints indicates fewer than two points.
	ErrTooFewPoints = errors.New("regression: at least two points are required")

	// ErrLengthMismatch indicates that the data slices differ in length.
	ErrLengthMismatch = errors.New("regression: data lengths differ")

	// ErrZeroError indicates a zero or negative standard error.
	ErrZeroError = errors.New("regression: standard errors must be positive")

	// ErrBadInput indicates a NaN or infinite value, or |ρ| > 1.
	ErrBadInput = errors.New("regression: invalid value in data")

	// ErrDegenerate indicates that all x values coincide.
	ErrDegenerate = errors.New("regression: x values have no spread")

	// ErrNotConverged indicates that the slope did not settle within MaxIterations.
	ErrNotConverged = errors.New("regression: slope did not converge")

	// ErrBadTolerance indicates Tolerance ≤ 0.
	ErrBadTolerance = errors.New("regression: Tolerance must be positive")

	// ErrBadMaxIterations indicates MaxIterations < 1.
	ErrBadMaxIterations = errors.New("regression: MaxIterations must be at least 1")
)

// Data is the input of a straight-line fit.
//
// X, Y, XErr and YErr are required and parallel. When X = XN/D and Y = YN/D
// are ratios sharing the denominator D, supplying D, XN, YN and their errors
// lets the fit derive the error correlation of every point:
//
//	ρ = (σD/D)² / √(((σXN/XN)² + (σD/D)²)((σYN/YN)² + (σD/D)²))
//
// Otherwise Rho (if set) gives ρ per point, and ρ = 0 when both are absent.
type Data struct {
	X, Y       []float64
	XErr, YErr []float64

	D, DErr   []float64
	XN, XNErr []float64
	YN, YNErr []float64

	Rho []float64
}

// Len returns the number of points.
func (d Data) Len() int { return len(d.X) }

// hasComponents reports whether every ratio-component slice is present.
func (d Data) hasComponents() bool {
	n := len(d.X)
	for _, s := range [][]float64{d.D, d.DErr, d.XN, d.XNErr, d.YN, d.YNErr} {
		if len(s) != n {
			return false
		}
	}

	return true
}

// Fit is the result of a straight-line fit y = Intercept + Slope·x.
type Fit struct {
	Slope, SlopeErr         float64
	Intercept, InterceptErr float64
	Covariance              float64 // cov(slope, intercept)
	MSWD                    float64 // 0 for two points
	N                       int
	Iterations              int
}

// XIntercept returns −Intercept/Slope and its 1σ error, including the
// slope-intercept covariance. A zero slope yields (NaN, NaN).
func (f Fit) XIntercept() (value, err float64) {
	if f.Slope == 0 {
		return math.NaN(), math.NaN()
	}
	b, a := f.Slope, f.Intercept
	da, db := -1/b, a/(b*b)
	v := da*da*f.InterceptErr*f.InterceptErr + db*db*f.SlopeErr*f.SlopeErr + 2*da*db*f.Covariance

	return -a / b, math.Sqrt(math.Max(v, 0))
}

// PredictY returns Intercept + Slope·x.
func (f Fit) PredictY(x float64) float64 { return f.Intercept + f.Slope*x }

// Options configures the York iteration.
//
// Tolerance     – relative slope change that stops the iteration (default 1e-12).
// MaxIterations – iteration cap (default 100).
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// Option represents a functional option for York.
type Option func(*Options)

// WithTolerance sets the relative convergence tolerance. Must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration cap. Must be at least 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns Tolerance 1e-12 and MaxIterations 100.
func DefaultOptions() Options {
	return Options{Tolerance: 1e-12, MaxIterations: 100}
}
