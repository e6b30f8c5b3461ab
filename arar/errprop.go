package arar

import (
	"math"

	"github.com/katalvlaran/ararpy/constants"
)

// Indices of the signal array taken by CalculateErrorF.
const (
	Sig40 = iota
	Sig39
	Sig38
	Sig37
	Sig36
)

// CalculateErrorF returns F and its 1σ error in closed form for F computed
// from measured ratios to ³⁹Ar (see CalculateFRatio).
//
// signals holds ⁴⁰Ar..³⁶Ar in Sig40..Sig36 order. With C1 the nominal
// atmospheric ⁴⁰Ar/³⁶Ar, C2 = ca3637, C3 = k4039, C4 = ca3937,
//
//	N  = m40 − C1·m36 + C1·C2·m37
//	Dn = m39 − C4·m37
//	F  = N/Dn − C3
//
// and σF² is the sum of the squared exact partials times the squared errors
// of m40, m39, m37, m36, C2, C3 and C4. ³⁸Ar does not enter F. A zero Dn
// returns ErrDivisionByZero.
func CalculateErrorF(signals [5]Measurement, k4039, ca3937, ca3637 Measurement, c *constants.Constants) (f, sigma float64, err error) {
	c = constants.OrDefault(c)

	m40, m39, m37, m36 := signals[Sig40], signals[Sig39], signals[Sig37], signals[Sig36]
	c1 := c.Atm4036().Nominal()
	c2, c3, c4 := ca3637.Value, k4039.Value, ca3937.Value

	n := m40.Value - c1*m36.Value + c1*c2*m37.Value
	dn := m39.Value - c4*m37.Value
	if dn == 0 {
		return 0, 0, araErrorf(opErrorF, ErrDivisionByZero)
	}
	dn2 := dn * dn

	partials := [...]struct{ d, e float64 }{
		{1 / dn, m40.Error},
		{-n / dn2, m39.Error},
		{c1*c2/dn + n*c4/dn2, m37.Error},
		{-c1 / dn, m36.Error},
		{c1 * m37.Value / dn, ca3637.Error},
		{-1, k4039.Error},
		{n * m37.Value / dn2, ca3937.Error},
	}
	var ss float64
	for _, p := range partials {
		ss += (p.d * p.e) * (p.d * p.e)
	}

	return n/dn - c3, math.Sqrt(ss), nil
}

// CalculateErrorT returns the 1σ error of the age (in units of
// c.AgeScalar()) from the errors of F and J, with λk exact:
//
//	σt = sqrt((J²σF² + F²σJ²) / (λk²(1 + F·J)²)) / AgeScalar
func CalculateErrorT(f, j Measurement, c *constants.Constants) float64 {
	c = constants.OrDefault(c)

	lk := c.LambdaK().Nominal()
	num := j.Value*j.Value*f.Error*f.Error + f.Value*f.Value*j.Error*j.Error
	den := lk * lk * (1 + f.Value*j.Value) * (1 + f.Value*j.Value)

	return math.Sqrt(num/den) / c.AgeScalar()
}
