// Package isochron derives an age from the inverse isochron of a set of
// analyses.
//
// 🚀 What is an inverse isochron?
//
//	Each analysis is a point (³⁹Ar/⁴⁰Ar, ³⁶Ar/⁴⁰Ar). Mixtures of radiogenic
//	and trapped argon fall on a line whose x-intercept is ³⁹Ar/⁴⁰Ar* = 1/F
//	and whose y-intercept is the trapped ³⁶Ar/⁴⁰Ar. The age follows from F
//	through the age equation, without assuming an atmospheric ⁴⁰Ar/³⁶Ar.
//
// ✨ Key features:
//   - Narrow Analysis capability: named interference-corrected isotopes, J
//     and a constants set. CorrectedAnalysis adapts an arar.FResult.
//   - Pluggable Regressor; York (2004) with shared-⁴⁰Ar error correlation
//     by default.
//   - Reports F, the trapped ⁴⁰Ar/³⁶Ar, both fits and the point arrays.
//
// ⚙️ Usage:
//
//	res, err := isochron.Calculate(analyses)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.3f Ma, trapped 40/36 = %.1f\n", res.Age, res.Trapped4036)
//
// The first analysis is the reference: its J (without error) and its
// constants set convert F into an age. A zero or negative x-intercept
// yields an exact zero age.
package isochron
