package ufloat

import (
	"fmt"
	"math"
	"strconv"
)

// New returns a Value backed by a fresh independent Variable.
//
// Panics with ErrNegativeStdDev when std is negative or NaN: a negative
// standard deviation is a programmer error. Use Parse for untrusted text.
func New(nominal, std float64) Value {
	if std < 0 || math.IsNaN(std) {
		panic(ErrNegativeStdDev.Error())
	}
	v := &Variable{id: nextID.Add(1), std: std}

	return Value{nominal: nominal, terms: []term{{v: v, d: 1}}}
}

// Const returns an exact Value (no uncertainty, no variables).
func Const(x float64) Value {
	return Value{nominal: x}
}

// Nominal returns the nominal value.
func (a Value) Nominal() float64 { return a.nominal }

// StdDev returns the propagated standard deviation, always ≥ 0.
func (a Value) StdDev() float64 {
	var ss, c float64
	for _, t := range a.terms {
		c = t.d * t.v.std
		ss += c * c
	}

	return math.Sqrt(ss)
}

// Variance returns StdDev squared.
func (a Value) Variance() float64 {
	s := a.StdDev()

	return s * s
}

// IsExact reports whether the value carries no uncertainty at all.
func (a Value) IsExact() bool { return a.StdDev() == 0 }

// Variables returns the independent variables the value depends on,
// ordered by identity.
func (a Value) Variables() []*Variable {
	out := make([]*Variable, len(a.terms))
	for i, t := range a.terms {
		out[i] = t.v
	}

	return out
}

// Derivative returns ∂a/∂v (zero when a does not depend on v).
func (a Value) Derivative(v *Variable) float64 {
	for _, t := range a.terms {
		if t.v == v {
			return t.d
		}
	}

	return 0
}

// Copy returns a Value with the same nominal value and standard deviation
// backed by a new independent Variable. The copy is uncorrelated with a.
func (a Value) Copy() Value {
	return New(a.nominal, a.StdDev())
}

// Without returns a with the contributions of vars removed.
// The nominal value is unchanged; only the listed error sources are dropped.
func (a Value) Without(vars ...*Variable) Value {
	if len(vars) == 0 || len(a.terms) == 0 {
		return a
	}
	drop := make(map[*Variable]struct{}, len(vars))
	for _, v := range vars {
		drop[v] = struct{}{}
	}
	out := make([]term, 0, len(a.terms))
	for _, t := range a.terms {
		if _, ok := drop[t.v]; ok {
			continue
		}
		out = append(out, t)
	}

	return Value{nominal: a.nominal, terms: out}
}

// Covariance returns the covariance of a and b.
func Covariance(a, b Value) float64 {
	var cov float64
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		ta, tb := a.terms[i], b.terms[j]
		switch {
		case ta.v.id < tb.v.id:
			i++
		case ta.v.id > tb.v.id:
			j++
		default:
			cov += ta.d * tb.d * ta.v.std * ta.v.std
			i++
			j++
		}
	}

	return cov
}

// Correlation returns the correlation coefficient of a and b,
// or 0 when either is exact.
func Correlation(a, b Value) float64 {
	sa, sb := a.StdDev(), b.StdDev()
	if sa == 0 || sb == 0 {
		return 0
	}

	return Covariance(a, b) / (sa * sb)
}

// Cmp compares nominal values: -1 if a < b, 0 if equal, +1 if a > b.
func (a Value) Cmp(b Value) int {
	switch {
	case a.nominal < b.nominal:
		return -1
	case a.nominal > b.nominal:
		return 1
	default:
		return 0
	}
}

// Max returns the operand with the larger nominal value; a wins ties.
func Max(a, b Value) Value {
	if b.nominal > a.nominal {
		return b
	}

	return a
}

// String formats the value as "nominal+/-std".
func (a Value) String() string {
	return strconv.FormatFloat(a.nominal, 'g', -1, 64) + "+/-" +
		strconv.FormatFloat(a.StdDev(), 'g', -1, 64)
}

// Format implements fmt.Formatter so verbs apply to both numbers:
// fmt.Sprintf("%.3f", v) == "1.235+/-0.012" for 1.2346±0.0123.
func (a Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "ufloat.Value{%g, %g}", a.nominal, a.StdDev())

			return
		}
		fmt.Fprint(f, a.String())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		format := "%"
		if p, ok := f.Precision(); ok {
			format += "." + strconv.Itoa(p)
		}
		format += string(verb)
		fmt.Fprintf(f, format+"+/-"+format, a.nominal, a.StdDev())
	default:
		fmt.Fprintf(f, "%%!%c(ufloat.Value=%s)", verb, a.String())
	}
}
