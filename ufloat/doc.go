// Package ufloat implements numbers with standard uncertainties and
// first-order (linear) error propagation.
//
// 🚀 What is a Value?
//
//	A Value is a nominal number together with its partial derivatives with
//	respect to a set of independent Variables. Every independent Variable
//	carries its own standard deviation, so the standard deviation of any
//	derived Value is
//
//	    σ² = Σ (∂v/∂xᵢ · σᵢ)²
//
//	Because the derivatives are kept per Variable, a quantity that enters a
//	calculation in several places (for example a measured ³⁹Ar signal used
//	for both ³⁹Ar(K) and ³⁷Ar(K)) is correctly correlated with itself.
//
// ✨ Key features:
//   - New / Const / Parse constructors ("1.5+/-0.2", "1.5±0.2", "1.5(2)")
//   - Add, Sub, Mul, Div, Pow, Exp, Log with exact first-order derivatives
//   - Covariance and Correlation between derived values
//   - Without(vars...) removes chosen error sources from a result
//     (immutable replacement for zeroing an input's standard deviation)
//
// Values are immutable: every operation returns a new Value and never
// touches its operands, so Values may be shared freely between goroutines.
//
// ⚙️ Usage:
//
//	a := ufloat.New(10, 0.1)
//	b := ufloat.New(2, 0.05)
//	r, err := a.Div(b)
//	if err != nil {
//	    // ErrDivisionByZero
//	}
//	fmt.Println(r) // 5+/-0.1346...
//
// Errors:
//   - ErrDivisionByZero: divisor (or 0 raised to a negative power) is zero.
//   - ErrDomain: logarithm of a non-positive number, fractional power of a negative one.
//   - ErrParse: text that is not an uncertain number.
package ufloat
