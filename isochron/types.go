package isochron

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ararpy/arar"
	"github.com/katalvlaran/ararpy/constants"
	"github.com/katalvlaran/ararpy/regression"
	"github.com/katalvlaran/ararpy/ufloat"
)

// Sentinel errors returned by the isochron package.
var (
	// ErrTooFewAnalyses indicates fewer than two analyses.
	ErrTooFewAnalyses = errors.New("isochron: at least two analyses are required")

	// ErrDivisionByZero indicates an analysis with zero ⁴⁰Ar.
	ErrDivisionByZero = errors.New("isochron: zero Ar40 in analysis")

	// ErrUnknownIsotope indicates a request for an isotope the analysis does not carry.
	ErrUnknownIsotope = errors.New("isochron: unknown isotope")

	// ErrNilRegressor indicates WithRegressor(nil).
	ErrNilRegressor = errors.New("isochron: regressor is nil")
)

// Analysis provides what the isochron needs from one measured step.
type Analysis interface {
	// InterferenceCorrectedValue returns the corrected signal of an isotope
	// named arar.Ar40 … arar.Ar36.
	InterferenceCorrectedValue(isotope string) (ufloat.Value, error)

	// J returns the irradiation flux parameter.
	J() ufloat.Value

	// Constants returns the constants set used for this analysis.
	Constants() *constants.Constants
}

// Regressor fits a straight line to data with errors in both coordinates.
type Regressor interface {
	Fit(regression.Data) (regression.Fit, error)
}

// CorrectedAnalysis adapts an arar.FResult to Analysis.
type CorrectedAnalysis struct {
	Result arar.FResult
	Flux   ufloat.Value
	Consts *constants.Constants
}

// InterferenceCorrectedValue implements Analysis.
func (a CorrectedAnalysis) InterferenceCorrectedValue(isotope string) (ufloat.Value, error) {
	v, ok := a.Result.InterferenceCorrected()[isotope]
	if !ok {
		return ufloat.Value{}, fmt.Errorf("%w: %q", ErrUnknownIsotope, isotope)
	}

	return v, nil
}

// J implements Analysis.
func (a CorrectedAnalysis) J() ufloat.Value { return a.Flux }

// Constants implements Analysis; nil means the default set.
func (a CorrectedAnalysis) Constants() *constants.Constants { return constants.OrDefault(a.Consts) }

// Points are the isochron coordinates as plain numbers.
type Points struct {
	X, Y       []float64 // ³⁹Ar/⁴⁰Ar, ³⁶Ar/⁴⁰Ar
	XErr, YErr []float64
}

// Result is an isochron age with its regression details.
type Result struct {
	Age         ufloat.Value // in units of the reference AgeScalar
	F           ufloat.Value // ⁴⁰Ar*/³⁹Ar(K) = 1/XIntercept
	XIntercept  ufloat.Value // ³⁹Ar/⁴⁰Ar at ³⁶Ar/⁴⁰Ar = 0
	Trapped4036 ufloat.Value // 1/(³⁶Ar/⁴⁰Ar at ³⁹Ar/⁴⁰Ar = 0)
	Fit         regression.Fit
	InverseFit  regression.Fit // x regressed on y; source of XIntercept
	Points      Points
}

// Options configures Calculate.
//
// Regressor – line fitter (default regression.NewYork()).
type Options struct {
	Regressor Regressor
}

// Option represents a functional option for Calculate.
type Option func(*Options)

// WithRegressor replaces the default York regressor. Panics on nil.
func WithRegressor(r Regressor) Option {
	return func(o *Options) {
		if r == nil {
			panic(ErrNilRegressor.Error())
		}
		o.Regressor = r
	}
}

// DefaultOptions returns York regression with default settings.
func DefaultOptions() Options {
	return Options{Regressor: regression.NewYork()}
}
