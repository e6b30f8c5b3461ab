package ufloat

// combine returns the terms of ca·a + cb·b, merged by variable identity.
// Zero derivatives are dropped; operands are never modified.
func combine(a Value, ca float64, b Value, cb float64) []term {
	if len(a.terms) == 0 && len(b.terms) == 0 {
		return nil
	}
	out := make([]term, 0, len(a.terms)+len(b.terms))
	i, j := 0, 0
	var d float64
	for i < len(a.terms) || j < len(b.terms) {
		switch {
		case j >= len(b.terms) || (i < len(a.terms) && a.terms[i].v.id < b.terms[j].v.id):
			d = ca * a.terms[i].d
			if d != 0 {
				out = append(out, term{v: a.terms[i].v, d: d})
			}
			i++
		case i >= len(a.terms) || b.terms[j].v.id < a.terms[i].v.id:
			d = cb * b.terms[j].d
			if d != 0 {
				out = append(out, term{v: b.terms[j].v, d: d})
			}
			j++
		default:
			d = ca*a.terms[i].d + cb*b.terms[j].d
			if d != 0 {
				out = append(out, term{v: a.terms[i].v, d: d})
			}
			i++
			j++
		}
	}

	return out
}

// scaleTerms returns the terms of c·a.
func scaleTerms(a Value, c float64) []term {
	if c == 0 || len(a.terms) == 0 {
		return nil
	}
	out := make([]term, len(a.terms))
	for i, t := range a.terms {
		out[i] = term{v: t.v, d: c * t.d}
	}

	return out
}

// Add returns a + b.
func (a Value) Add(b Value) Value {
	return Value{nominal: a.nominal + b.nominal, terms: combine(a, 1, b, 1)}
}

// Sub returns a − b.
func (a Value) Sub(b Value) Value {
	return Value{nominal: a.nominal - b.nominal, terms: combine(a, 1, b, -1)}
}

// Mul returns a · b.
func (a Value) Mul(b Value) Value {
	return Value{nominal: a.nominal * b.nominal, terms: combine(a, b.nominal, b, a.nominal)}
}

// Div returns a / b, or ErrDivisionByZero when b's nominal value is zero.
func (a Value) Div(b Value) (Value, error) {
	if b.nominal == 0 {
		return Value{}, ErrDivisionByZero
	}
	q := a.nominal / b.nominal

	return Value{nominal: q, terms: combine(a, 1/b.nominal, b, -q/b.nominal)}, nil
}

// Inv returns 1 / a.
func (a Value) Inv() (Value, error) {
	return Const(1).Div(a)
}

// Scale returns k · a for an exact k.
func (a Value) Scale(k float64) Value {
	return Value{nominal: k * a.nominal, terms: scaleTerms(a, k)}
}

// AddConst returns a + k for an exact k.
func (a Value) AddConst(k float64) Value {
	return Value{nominal: a.nominal + k, terms: a.terms}
}

// Neg returns −a.
func (a Value) Neg() Value {
	return a.Scale(-1)
}

// Sum returns the sum of vs (exact 0 for no operands).
func Sum(vs ...Value) Value {
	var s Value
	for _, v := range vs {
		s = s.Add(v)
	}

	return s
}
