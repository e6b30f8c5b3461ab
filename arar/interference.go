package arar

import (
	"github.com/katalvlaran/ararpy/constants"
	"github.com/katalvlaran/ararpy/ufloat"
)

// correctionIterations is the number of fixed-point passes of both coupled
// corrections.
const correctionIterations = 5

// seedStdDev is the standard deviation of the zero seed of both loops.
const seedStdDev = 1e-20

// InterferenceCorrections separates K- and Ca-derived argon.
//
// The iterative model runs when c's K3739 mode is "normal" and fixedK3739 is
// nil; otherwise the fixed-ratio model (ApplyFixedK3739) runs with fixedK3739,
// or c.FixedK3739() when fixedK3739 is nil. Unless c allows negative Ca
// corrections, ³⁷Ar(Ca) is floored at an exact zero before ³⁶Ar(Ca) and
// ³⁸Ar(Ca) are derived from it.
//
// A nil c means constants.Default(). Missing ratios read as zero.
func InterferenceCorrections(iso Isotopes, ratios ProductionRatios, c *constants.Constants, fixedK3739 *float64) (Interferences, error) {
	c = constants.OrDefault(c)

	var out Interferences
	if c.IterativeK3739() && fixedK3739 == nil {
		ca3937, k3739 := ratios.Get(Ca3937), ratios.Get(K3739)
		k37 := ufloat.New(0, seedStdDev)
		for i := 0; i < correctionIterations; i++ {
			out.Ca37 = iso.Ar37.Sub(k37)
			out.Ca39 = ca3937.Mul(out.Ca37)
			out.K39 = iso.Ar39.Sub(out.Ca39)
			k37 = k3739.Mul(out.K39)
		}
		out.K37 = k37
	} else {
		x := c.FixedK3739()
		if fixedK3739 != nil {
			x = *fixedK3739
		}
		fixed, err := ApplyFixedK3739(iso.Ar39, ratios, x)
		if err != nil {
			return Interferences{}, err
		}
		out = fixed
	}

	out.K38 = ratios.Get(K3839).Mul(out.K39)
	if !c.AllowNegativeCaCorrection() {
		out.Ca37 = ufloat.Max(ufloat.Const(0), out.Ca37)
	}
	out.Ca36 = ratios.Get(Ca3637).Mul(out.Ca37)
	out.Ca38 = ratios.Get(Ca3837).Mul(out.Ca37)

	return out, nil
}

// ApplyFixedK3739 solves the interference system in closed form for a given
// ³⁷Ar(Ca)/³⁹Ar(K) ratio x:
//
//	y    = 1/ca3937            (ca3937 defaults to 1)
//	ca37 = a39·x·y/(x + y)
//	ca39 = ca3937·ca37
//	k39  = a39 − ca39
//	k37  = x·k39
//
// Only Ca37, Ca39, K37 and K39 of the result are set. A zero ca3937 or a
// vanishing x + y returns ErrDivisionByZero.
func ApplyFixedK3739(a39 ufloat.Value, ratios ProductionRatios, x float64) (Interferences, error) {
	y, err := ratios.GetOr(Ca3937, 1).Inv()
	if err != nil {
		return Interferences{}, araErrorf(opFixedK3739, err)
	}
	ca37, err := a39.Scale(x).Mul(y).Div(y.AddConst(x))
	if err != nil {
		return Interferences{}, araErrorf(opFixedK3739, err)
	}

	var out Interferences
	out.Ca37 = ca37
	out.Ca39 = ratios.Get(Ca3937).Mul(ca37)
	out.K39 = a39.Sub(out.Ca39)
	out.K37 = out.K39.Scale(x)

	return out, nil
}

// CalculateAtmospheric separates atmospheric from chlorine-derived ³⁶Ar.
//
// ³⁶Ar(Cl) grows in from ³⁶Cl produced on ³⁸Ar(Cl) during irradiation, so with
// m = cl3638·λ(³⁶Cl)·decayTime the loop
//
//	atm38 = atm3836·atm36
//	cl38  = a38 − atm38 − k38 − ca38
//	cl36  = m·cl38
//	atm36 = a36 − ca36 − cl36
//
// runs five times from atm36 = 0. The decay constant and atm3836 enter as
// exact nominal values.
func CalculateAtmospheric(a38, a36, k38, ca38, ca36 ufloat.Value, decayTime float64, ratios ProductionRatios, c *constants.Constants) Atmospheric {
	c = constants.OrDefault(c)

	m := ratios.Get(Cl3638).Scale(c.LambdaCl36().Nominal() * decayTime)
	atm3836 := c.Atm3836().Nominal()

	var out Atmospheric
	out.Atm36 = ufloat.New(0, seedStdDev)
	for i := 0; i < correctionIterations; i++ {
		out.Atm38 = out.Atm36.Scale(atm3836)
		out.Cl38 = a38.Sub(out.Atm38).Sub(k38).Sub(ca38)
		out.Cl36 = out.Cl38.Mul(m)
		out.Atm36 = a36.Sub(ca36).Sub(out.Cl36)
	}

	return out
}

// AbundanceSensitivityCorrection removes the tail of each peak from its
// neighbours: every isotope loses s times the sum of its two adjacent
// signals. ⁴⁰Ar and ³⁶Ar have a single measured neighbour, counted twice.
func AbundanceSensitivityCorrection(iso Isotopes, s float64) Isotopes {
	return Isotopes{
		Ar40: iso.Ar40.Sub(iso.Ar39.Add(iso.Ar39).Scale(s)),
		Ar39: iso.Ar39.Sub(iso.Ar40.Add(iso.Ar38).Scale(s)),
		Ar38: iso.Ar38.Sub(iso.Ar39.Add(iso.Ar37).Scale(s)),
		Ar37: iso.Ar37.Sub(iso.Ar38.Add(iso.Ar36).Scale(s)),
		Ar36: iso.Ar36.Sub(iso.Ar37.Add(iso.Ar37).Scale(s)),
	}
}
