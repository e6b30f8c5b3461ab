// Package ararpy is a toolkit for ⁴⁰Ar/³⁹Ar geochronology: it turns
// blank-corrected argon isotope signals into F ratios, ages, plateau ages
// and isochron ages, carrying correlated uncertainties end to end.
//
// 🚀 What is ararpy?
//
//	A pure-Go calculation library organised as small packages:
//		• ufloat:     uncertain numbers with first-order, correlation-aware propagation
//		• constants:  decay constants, atmospheric ratios and model switches (YAML/TOML)
//		• arar:       interference and atmospheric corrections, F, age equation, J, decay factors
//		• plateau:    Fleck (1977) and Mahon (1996) plateau detection and weighted means
//		• regression: York (2004) straight-line fit with errors in both coordinates
//		• isochron:   inverse-isochron F, trapped ⁴⁰Ar/³⁶Ar and age
//
// ✨ Why choose ararpy?
//
//   - Correlations preserved – shared ⁴⁰Ar, J and production ratios stay linked
//   - Documented fallbacks – degenerate inputs yield defined values, not panics
//   - Deterministic – no I/O, no global state, safe for concurrent callers
//   - Configurable – functional options and decodable constants sets
//
// ⚙️ Usage:
//
//	iso := arar.NewIsotopes(100, 0.1, 10, 0.01, 0.2, 0.002, 5, 0.05, 0.1, 0.001)
//	res, err := arar.CalculateF(iso, decayTime, ratios, constants.Default(), nil)
//	if err != nil {
//	    return err
//	}
//	age := arar.AgeEquation(arar.FromText("0.01+/-0.00001"), arar.FromQuantity(res.F), true, nil)
//	fmt.Printf("%.3f Ma\n", age)
//
// The cmd/ararcalc binary exposes the same calculations on the command line.
package ararpy
