package arar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ararpy/constants"
	"github.com/katalvlaran/ararpy/ufloat"
)

type operandKind uint8

const (
	operandNone operandKind = iota
	operandComponents
	operandText
	operandQuantity
)

// Operand is a number accepted by AgeEquation and CalculateFlux in one of
// three forms: a (nominal, std) pair, text understood by ufloat.Parse, or an
// existing ufloat.Value. The zero Operand resolves to an error.
type Operand struct {
	kind    operandKind
	nominal float64
	std     float64
	text    string
	value   ufloat.Value
}

// FromComponents wraps a (nominal, std) pair; each resolution creates a
// fresh independent variable.
func FromComponents(nominal, std float64) Operand {
	return Operand{kind: operandComponents, nominal: nominal, std: std}
}

// FromText wraps text such as "1.5+/-0.2", "1.5±0.2" or "1.5(2)".
func FromText(s string) Operand {
	return Operand{kind: operandText, text: s}
}

// FromQuantity wraps an existing value, keeping its correlations.
func FromQuantity(v ufloat.Value) Operand {
	return Operand{kind: operandQuantity, value: v}
}

// Value resolves the operand. Errors match ErrInvalidOperand.
func (o Operand) Value() (ufloat.Value, error) {
	switch o.kind {
	case operandQuantity:
		return o.value, nil
	case operandComponents:
		if o.std < 0 || math.IsNaN(o.std) || math.IsNaN(o.nominal) {
			return ufloat.Value{}, fmt.Errorf("%w: (%g, %g)", ErrInvalidOperand, o.nominal, o.std)
		}

		return ufloat.New(o.nominal, o.std), nil
	case operandText:
		v, err := ufloat.Parse(o.text)
		if err != nil {
			return ufloat.Value{}, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
		}

		return v, nil
	default:
		return ufloat.Value{}, ErrInvalidOperand
	}
}

// AgeEquation returns t = ln(1 + J·F)/λk in units of c.AgeScalar().
//
// λk contributes its uncertainty only when includeDecayError is set. An
// operand that does not resolve, or 1 + J·F ≤ 0, yields an exact zero.
func AgeEquation(j, f Operand, includeDecayError bool, c *constants.Constants) ufloat.Value {
	c = constants.OrDefault(c)

	jv, err := j.Value()
	if err != nil {
		return ufloat.Const(0)
	}
	fv, err := f.Value()
	if err != nil {
		return ufloat.Const(0)
	}

	ln, err := ufloat.Log(jv.Mul(fv).AddConst(1))
	if err != nil {
		return ufloat.Const(0)
	}

	lk := c.LambdaK()
	if !includeDecayError {
		lk = ufloat.Const(lk.Nominal())
	}
	age, err := ln.Div(lk)
	if err != nil {
		return ufloat.Const(0)
	}

	return age.Scale(1 / c.AgeScalar())
}

// CalculateFlux inverts the age equation for a monitor of known age:
//
//	J = (exp(λk·age·AgeScalar) − 1)/F
//
// age is in units of c.AgeScalar(), so AgeEquation(CalculateFlux(F, t), F)
// returns t. λk enters as its nominal value. A zero F or an operand that does
// not resolve yields an exact one.
func CalculateFlux(f, age Operand, c *constants.Constants) ufloat.Value {
	c = constants.OrDefault(c)

	fv, err := f.Value()
	if err != nil {
		return ufloat.Const(1)
	}
	av, err := age.Value()
	if err != nil {
		return ufloat.Const(1)
	}

	growth := ufloat.Exp(av.Scale(c.LambdaK().Nominal() * c.AgeScalar())).AddConst(-1)
	j, err := growth.Div(fv)
	if err != nil {
		return ufloat.Const(1)
	}

	return j
}
