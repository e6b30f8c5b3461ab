// Package plateau finds age plateaus in incremental-heating spectra and
// computes plateau ages.
//
// 🚀 What is a plateau?
//
//	A contiguous run of heating steps whose ages agree within their errors
//	and which together release a large share of the ³⁹Ar(K). The plateau age
//	is a weighted mean over that run.
//
// ✨ Key features:
//   - Fleck et al. (1977): every pair of steps overlaps at OverlapSigma
//     (|aᵢ − aⱼ| < σ·(eᵢ + eⱼ)), at least MinSteps steps, at least
//     MinFraction of the total ³⁹Ar.
//   - Mahon (1996): contiguous steps accepted when the MSWD of their
//     inverse-variance mean lies inside 1 + σ·√(2/(n−1)).
//   - Deterministic choice: longest run, then larger ³⁹Ar fraction, then
//     earliest start.
//   - Two age kinds: inverse-variance weighted (default) and ³⁹Ar volume
//     weighted.
//
// ⚙️ Usage:
//
//	res, ok, err := plateau.CalculateAge(ages, errors, k39,
//	    plateau.WithMinFraction(0.6),
//	)
//	if err != nil {
//	    return err
//	}
//	if ok {
//	    fmt.Printf("steps %v: %.3f ± %.3f\n", res.Span, res.Age, res.Error)
//	}
//
// "No plateau" is reported through ok == false, never as an error. Errors
// are reserved for malformed input (see errors.go).
//
// Complexity: O(n³) time in the number of steps, O(1) extra space.
package plateau
