package arar

import (
	"github.com/katalvlaran/ararpy/constants"
	"github.com/katalvlaran/ararpy/ufloat"
)

// CalculateF corrects one analysis and returns F = ⁴⁰Ar*/³⁹Ar(K) with the
// full corrected-isotope bundle.
//
// ratios is cloned first, so every call has its own production-ratio error
// sources and the caller's map is never touched. FWithoutIrradiation is F
// with exactly those cloned sources removed.
//
//	atm40 = atm4036·atm36      (atm4036 exact)
//	k40   = k4039·k39          (k4039 defaults to 1)
//	rad40 = a40 − atm40 − k40
//	F     = rad40/k39          (1±0 when k39 is zero)
//
// decayTime is the time since irradiation, in the unit of λ(³⁶Cl).
// Errors from the interference step are returned unchanged.
func CalculateF(iso Isotopes, decayTime float64, ratios ProductionRatios, c *constants.Constants, fixedK3739 *float64) (FResult, error) {
	c = constants.OrDefault(c)
	pr := ratios.Clone()

	inter, err := InterferenceCorrections(iso, pr, c, fixedK3739)
	if err != nil {
		return FResult{}, err
	}
	atm := CalculateAtmospheric(iso.Ar38, iso.Ar36, inter.K38, inter.Ca38, inter.Ca36, decayTime, pr, c)

	res := FResult{
		Isotopes:      iso,
		Interferences: inter,
		Atmospheric:   atm,
	}
	res.Atm40 = atm.Atm36.Scale(c.Atm4036().Nominal())
	res.K40 = inter.K39.Mul(pr.GetOr(K4039, 1))
	res.Rad40 = iso.Ar40.Sub(res.Atm40).Sub(res.K40)

	if res.F, err = res.Rad40.Div(inter.K39); err != nil {
		res.F = ufloat.Const(1)
	}
	if pct, err := res.Rad40.Div(iso.Ar40); err == nil {
		res.Rad40Percent = pct.Scale(100)
	} else {
		res.Rad40Percent = ufloat.Const(0)
	}
	res.FWithoutIrradiation = res.F.Without(pr.Variables()...)

	return res, nil
}

// CalculateFRatio computes F from measured ratios to ³⁹Ar:
//
//	F = (m4039 − atm·m3639 + atm·ca3637·m3739) / (1 − ca3937·m3739) − k4039
//
// with atm the nominal atmospheric ⁴⁰Ar/³⁶Ar of c. Missing ratios read as
// zero. Returns ErrDivisionByZero when ca3937·m3739 equals one.
func CalculateFRatio(m4039, m3739, m3639 ufloat.Value, ratios ProductionRatios, c *constants.Constants) (ufloat.Value, error) {
	c = constants.OrDefault(c)
	atm := c.Atm4036().Nominal()

	num := m4039.Sub(m3639.Scale(atm)).Add(ratios.Get(Ca3637).Mul(m3739).Scale(atm))
	den := ufloat.Const(1).Sub(ratios.Get(Ca3937).Mul(m3739))
	q, err := num.Div(den)
	if err != nil {
		return ufloat.Value{}, araErrorf(opFRatio, err)
	}

	return q.Sub(ratios.Get(K4039)), nil
}
