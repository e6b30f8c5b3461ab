// Package regression fits straight lines to data with errors in both
// coordinates.
//
// 🚀 What is York regression?
//
//	York et al. (2004) give the maximum-likelihood straight line through
//	points whose x and y both carry Gaussian errors, possibly correlated.
//	It is the standard regressor for Ar/Ar isochrons, where both axes are
//	ratios sharing the ⁴⁰Ar denominator.
//
// ✨ Key features:
//   - Iterative slope with per-point weights
//     W = ωXωY / (ωX + b²ωY − 2bρ√(ωXωY)), ω = 1/σ².
//   - Standard errors of slope and intercept, their covariance, MSWD and the
//     x-intercept with its propagated error.
//   - Error correlation ρ derived from shared-denominator ratio components
//     when they are supplied, explicit ρ otherwise.
//
// ⚙️ Usage:
//
//	fit, err := regression.NewYork().Fit(regression.Data{
//	    X: xs, Y: ys, XErr: sx, YErr: sy,
//	})
//
// Errors (sentinel):
//
//	ErrTooFewPoints, ErrLengthMismatch, ErrZeroError, ErrBadInput,
//	ErrDegenerate, ErrNotConverged.
package regression
