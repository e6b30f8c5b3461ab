package arar

import "github.com/katalvlaran/ararpy/ufloat"

// Isotope names used as keys of the reporting maps.
const (
	Ar40 = "Ar40"
	Ar39 = "Ar39"
	Ar38 = "Ar38"
	Ar37 = "Ar37"
	Ar36 = "Ar36"
)

// Production-ratio keys.
const (
	Ca3637 = "ca3637" // ³⁶Ar/³⁷Ar from Ca
	Ca3837 = "ca3837" // ³⁸Ar/³⁷Ar from Ca
	Ca3937 = "ca3937" // ³⁹Ar/³⁷Ar from Ca
	K3739  = "k3739"  // ³⁷Ar/³⁹Ar from K
	K3839  = "k3839"  // ³⁸Ar/³⁹Ar from K
	K4039  = "k4039"  // ⁴⁰Ar/³⁹Ar from K
	Cl3638 = "cl3638" // ³⁶Ar/³⁸Ar from Cl (³⁶Cl decay)
)

// Isotopes is the measured signal vector, already corrected for blank,
// baseline, discrimination and ³⁷Ar/³⁹Ar decay.
type Isotopes struct {
	Ar40, Ar39, Ar38, Ar37, Ar36 ufloat.Value
}

// NewIsotopes builds Isotopes from (value, error) pairs in 40..36 order.
func NewIsotopes(a40, e40, a39, e39, a38, e38, a37, e37, a36, e36 float64) Isotopes {
	return Isotopes{
		Ar40: ufloat.New(a40, e40),
		Ar39: ufloat.New(a39, e39),
		Ar38: ufloat.New(a38, e38),
		Ar37: ufloat.New(a37, e37),
		Ar36: ufloat.New(a36, e36),
	}
}

// ProductionRatios maps a production-ratio key to its value.
// Missing keys read as zero.
type ProductionRatios map[string]ufloat.Value

// Get returns the ratio for key, or an exact zero when absent.
func (pr ProductionRatios) Get(key string) ufloat.Value {
	return pr.GetOr(key, 0)
}

// GetOr returns the ratio for key, or the exact value def when absent.
func (pr ProductionRatios) GetOr(key string, def float64) ufloat.Value {
	if v, ok := pr[key]; ok {
		return v
	}

	return ufloat.Const(def)
}

// Clone returns a copy whose ratios are fresh independent variables with the
// same nominal values and standard deviations. Corrections on one analysis
// therefore never share error sources with another through the ratio map.
func (pr ProductionRatios) Clone() ProductionRatios {
	out := make(ProductionRatios, len(pr))
	for k, v := range pr {
		out[k] = v.Copy()
	}

	return out
}

// Variables returns every independent variable the ratios depend on.
func (pr ProductionRatios) Variables() []*ufloat.Variable {
	var vars []*ufloat.Variable
	for _, v := range pr {
		vars = append(vars, v.Variables()...)
	}

	return vars
}

// Interferences holds the K- and Ca-derived isotopes.
type Interferences struct {
	K37, K38, K39          ufloat.Value
	Ca36, Ca37, Ca38, Ca39 ufloat.Value
}

// Atmospheric holds the result of the coupled atmospheric/chlorine correction.
type Atmospheric struct {
	Atm36 ufloat.Value // atmospheric ³⁶Ar
	Atm38 ufloat.Value // atmospheric ³⁸Ar (atm3836 · Atm36)
	Cl36  ufloat.Value // chlorine-derived ³⁶Ar
	Cl38  ufloat.Value // chlorine-derived ³⁸Ar
}

// FResult is the corrected-isotope bundle produced by CalculateF.
type FResult struct {
	// F is ⁴⁰Ar*/³⁹Ar(K) with every error source.
	F ufloat.Value

	// FWithoutIrradiation is F without the production-ratio uncertainties.
	FWithoutIrradiation ufloat.Value

	Rad40        ufloat.Value // radiogenic ⁴⁰Ar
	Rad40Percent ufloat.Value // 100 · ⁴⁰Ar*/⁴⁰Ar
	K40          ufloat.Value // K-derived ⁴⁰Ar
	Atm40        ufloat.Value // atmospheric ⁴⁰Ar

	Isotopes      Isotopes
	Interferences Interferences
	Atmospheric   Atmospheric
}

// NonArIsotopes returns the derived, non-measured isotope quantities.
func (r FResult) NonArIsotopes() map[string]ufloat.Value {
	return map[string]ufloat.Value{
		"k40":  r.K40,
		"ca39": r.Interferences.Ca39,
		"k38":  r.Interferences.K38,
		"ca38": r.Interferences.Ca38,
		"k37":  r.Interferences.K37,
		"ca37": r.Interferences.Ca37,
		"ca36": r.Interferences.Ca36,
		"cl36": r.Atmospheric.Cl36,
	}
}

// Computed returns the radiogenic quantities used for reporting.
func (r FResult) Computed() map[string]ufloat.Value {
	return map[string]ufloat.Value{
		"rad40":         r.Rad40,
		"rad40_percent": r.Rad40Percent,
		"k39":           r.Interferences.K39,
		"atm40":         r.Atm40,
	}
}

// InterferenceCorrected returns the interference-corrected isotopes keyed by
// isotope name; the isochron path consumes Ar40, Ar39 and Ar36 from here.
func (r FResult) InterferenceCorrected() map[string]ufloat.Value {
	return map[string]ufloat.Value{
		Ar40: r.Isotopes.Ar40.Sub(r.K40),
		Ar39: r.Interferences.K39,
		Ar38: r.Isotopes.Ar38,
		Ar37: r.Isotopes.Ar37,
		Ar36: r.Atmospheric.Atm36,
	}
}

// Segment is one step of an irradiation history.
type Segment struct {
	Power    float64 // relative reactor power pᵢ
	Duration float64 // segment length tᵢ
	Elapsed  float64 // time from segment start to analysis δtᵢ
}

// Measurement is a raw (value, 1σ error) pair for the closed-form error path.
type Measurement struct {
	Value, Error float64
}
