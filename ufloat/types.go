package ufloat

import "sync/atomic"

// nextID hands out Variable identities. Identities only need to be unique
// and ordered within the process, which keeps term slices sortable.
var nextID atomic.Uint64

// Variable is an independent source of uncertainty.
//
// A Variable is created by New (or Parse / Copy) and is never modified
// afterwards; Values refer to it by pointer.
type Variable struct {
	id  uint64
	std float64
}

// ID returns the process-unique identity of the variable.
func (v *Variable) ID() uint64 { return v.id }

// StdDev returns the standard deviation of the variable.
func (v *Variable) StdDev() float64 { return v.std }

// term is one partial derivative ∂value/∂variable.
type term struct {
	v *Variable
	d float64
}

// Value is a nominal value with linear sensitivities to independent Variables.
//
// Invariants:
//   - terms are sorted by Variable.id, one entry per Variable;
//   - terms never hold a zero derivative;
//   - the slice is never mutated after construction (copy-on-write).
//
// The zero Value is the exact number 0.
type Value struct {
	nominal float64
	terms   []term
}
