// Package arar computes ⁴⁰Ar/³⁹Ar ages from blank-, baseline- and
// discrimination-corrected isotope signals.
//
// Pipeline:
//
//	Isotopes ──► InterferenceCorrections ──► CalculateAtmospheric ──► CalculateF ──► AgeEquation
//	              (Ca, K: ³⁷Ar, ³⁹Ar, ³⁸Ar)   (atm ³⁶Ar ↔ Cl ³⁶Ar)     (F = ⁴⁰Ar*/³⁹Ar(K))   (t = ln(1+JF)/λk)
//
// and the inverse, CalculateFlux, which solves the age equation for J given
// a monitor of known age.
//
// Interference model:
//
//   - Iterative ("normal"): ³⁷Ar(K) and ³⁹Ar(K) are coupled through the
//     production ratios k3739 and ca3937; the system is solved by five
//     fixed-point iterations starting from ³⁷Ar(K) = 0.
//   - Fixed ratio: ³⁷Ar(Ca)/³⁹Ar(K) is given and the system is solved in
//     closed form (ApplyFixedK3739).
//
// The atmospheric correction is coupled to chlorine-derived ³⁶Ar through
// ³⁸Ar(atm) and is likewise solved by five fixed-point iterations.
//
// Uncertainties:
//
//	All quantities are ufloat.Values, so every correction propagates the
//	first-order uncertainty of every signal, production ratio and constant
//	with full correlation. CalculateErrorF and CalculateErrorT are an
//	independent closed-form path on raw floats for the measured-ratio F and
//	the age; they agree with the automatic path to rounding.
//
// Fallbacks (documented values, never errors):
//
//	F → 1±0 when ³⁹Ar(K) is zero, ⁴⁰Ar* % → 0±0 when ⁴⁰Ar is zero,
//	J → 1±0 when F is zero, age → 0±0 for an invalid logarithm or operand,
//	decay factor → 1 when its denominator vanishes.
//
// Division by zero inside the correction loops (fixed-ratio model with
// x + 1/ca3937 = 0 or ca3937 = 0) is not masked: it is returned as an error
// matching ErrDivisionByZero, because it indicates bad upstream data.
package arar
