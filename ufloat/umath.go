package ufloat

import "math"

// apply returns f(a) given f(a.nominal) and f'(a.nominal).
func apply(a Value, fx, dfx float64) Value {
	return Value{nominal: fx, terms: scaleTerms(a, dfx)}
}

// Exp returns e^a.
func Exp(a Value) Value {
	e := math.Exp(a.nominal)

	return apply(a, e, e)
}

// Log returns the natural logarithm of a, or ErrDomain when a ≤ 0.
func Log(a Value) (Value, error) {
	if a.nominal <= 0 || math.IsNaN(a.nominal) {
		return Value{}, ErrDomain
	}

	return apply(a, math.Log(a.nominal), 1/a.nominal), nil
}

// Sqrt returns √a, or ErrDomain when a < 0.
// The derivative at 0 is infinite; an exact zero stays exact.
func Sqrt(a Value) (Value, error) {
	if a.nominal < 0 || math.IsNaN(a.nominal) {
		return Value{}, ErrDomain
	}
	s := math.Sqrt(a.nominal)
	if s == 0 {
		if len(a.terms) == 0 {
			return Value{}, nil
		}

		return Value{}, ErrDivisionByZero
	}

	return apply(a, s, 0.5/s), nil
}

// Pow returns a^p for an exact exponent p.
//
// Errors:
//   - ErrDivisionByZero when a is 0 and p < 0;
//   - ErrDomain when a < 0 and p is not an integer.
func (a Value) Pow(p float64) (Value, error) {
	switch {
	case p == 0:
		return Const(1), nil
	case p == 1:
		return a, nil
	case a.nominal == 0 && p < 0:
		return Value{}, ErrDivisionByZero
	case a.nominal < 0 && p != math.Trunc(p):
		return Value{}, ErrDomain
	}
	fx := math.Pow(a.nominal, p)
	var dfx float64
	if a.nominal != 0 || p > 1 {
		dfx = p * math.Pow(a.nominal, p-1)
	}

	return apply(a, fx, dfx), nil
}
