package isochron

import (
	"fmt"

	"github.com/katalvlaran/ararpy/arar"
	"github.com/katalvlaran/ararpy/regression"
	"github.com/katalvlaran/ararpy/ufloat"
)

// signals holds the three isotopes the isochron uses, per analysis.
type signals struct {
	a40, a39, a36 []ufloat.Value
}

func collect(analyses []Analysis) (signals, error) {
	s := signals{
		a40: make([]ufloat.Value, len(analyses)),
		a39: make([]ufloat.Value, len(analyses)),
		a36: make([]ufloat.Value, len(analyses)),
	}
	for i, an := range analyses {
		for _, iso := range [...]struct {
			name string
			dst  []ufloat.Value
		}{{arar.Ar40, s.a40}, {arar.Ar39, s.a39}, {arar.Ar36, s.a36}} {
			v, err := an.InterferenceCorrectedValue(iso.name)
			if err != nil {
				return signals{}, fmt.Errorf("isochron: analysis %d: %w", i, err)
			}
			iso.dst[i] = v
		}
	}

	return s, nil
}

func (s signals) ratios() (xs, ys []ufloat.Value, err error) {
	xs = make([]ufloat.Value, len(s.a40))
	ys = make([]ufloat.Value, len(s.a40))
	for i := range s.a40 {
		if xs[i], err = s.a39[i].Div(s.a40[i]); err != nil {
			return nil, nil, fmt.Errorf("%w (analysis %d)", ErrDivisionByZero, i)
		}
		if ys[i], err = s.a36[i].Div(s.a40[i]); err != nil {
			return nil, nil, fmt.Errorf("%w (analysis %d)", ErrDivisionByZero, i)
		}
	}

	return xs, ys, nil
}

// ExtractXY returns x = ³⁹Ar/⁴⁰Ar and y = ³⁶Ar/⁴⁰Ar for every analysis.
func ExtractXY(analyses []Analysis) (xs, ys []ufloat.Value, err error) {
	s, err := collect(analyses)
	if err != nil {
		return nil, nil, err
	}

	return s.ratios()
}

// Calculate regresses the inverse isochron and converts its x-intercept
// into an age using the first analysis as reference.
func Calculate(analyses []Analysis, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(analyses) < 2 {
		return Result{}, ErrTooFewAnalyses
	}

	s, err := collect(analyses)
	if err != nil {
		return Result{}, err
	}
	xs, ys, err := s.ratios()
	if err != nil {
		return Result{}, err
	}

	pts := Points{
		X: nominals(xs), XErr: stdDevs(xs),
		Y: nominals(ys), YErr: stdDevs(ys),
	}
	d40, e40 := nominals(s.a40), stdDevs(s.a40)
	n39, e39 := nominals(s.a39), stdDevs(s.a39)
	n36, e36 := nominals(s.a36), stdDevs(s.a36)

	inverse, err := o.Regressor.Fit(regressionData(pts.Y, pts.YErr, pts.X, pts.XErr, d40, e40, n36, e36, n39, e39))
	if err != nil {
		return Result{}, fmt.Errorf("isochron: x on y: %w", err)
	}
	fit, err := o.Regressor.Fit(regressionData(pts.X, pts.XErr, pts.Y, pts.YErr, d40, e40, n39, e39, n36, e36))
	if err != nil {
		return Result{}, fmt.Errorf("isochron: y on x: %w", err)
	}

	res := Result{
		Fit:        fit,
		InverseFit: inverse,
		Points:     pts,
		XIntercept: ufloat.New(inverse.Intercept, inverse.InterceptErr),
	}
	res.F = invertOrZero(res.XIntercept)
	res.Trapped4036 = invertOrZero(ufloat.New(fit.Intercept, fit.InterceptErr))

	ref := analyses[0]
	res.Age = ufloat.Const(0)
	if res.F.Nominal() > 0 {
		res.Age = arar.AgeEquation(
			arar.FromComponents(ref.J().Nominal(), 0),
			arar.FromQuantity(res.F),
			false,
			ref.Constants(),
		)
	}

	return res, nil
}

// regressionData pairs a ratio axis with the raw components of both ratios,
// so the regressor can derive the shared-⁴⁰Ar error correlation.
func regressionData(x, xe, y, ye, d, de, xn, xne, yn, yne []float64) regression.Data {
	return regression.Data{
		X: x, XErr: xe,
		Y: y, YErr: ye,
		D: d, DErr: de,
		XN: xn, XNErr: xne,
		YN: yn, YNErr: yne,
	}
}

func invertOrZero(v ufloat.Value) ufloat.Value {
	r, err := v.Inv()
	if err != nil {
		return ufloat.Const(0)
	}

	return r
}

func nominals(vs []ufloat.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Nominal()
	}

	return out
}

func stdDevs(vs []ufloat.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.StdDev()
	}

	return out
}
