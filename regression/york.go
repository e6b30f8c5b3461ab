package regression

import (
	"fmt"
	"math"
)

// York fits straight lines by the York et al. (2004) algorithm.
// A York is immutable and safe for concurrent use.
type York struct {
	opts Options
}

// NewYork returns a York regressor configured by opts.
func NewYork(opts ...Option) *York {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &York{opts: o}
}

// Options returns the effective configuration.
func (y *York) Options() Options { return y.opts }

// Fit fits y = a + b·x to d.
func (y *York) Fit(d Data) (Fit, error) {
	if err := validate(d); err != nil {
		return Fit{}, err
	}
	n := d.Len()
	rho := correlations(d)

	wx := make([]float64, n)
	wy := make([]float64, n)
	alpha := make([]float64, n)
	for i := 0; i < n; i++ {
		wx[i] = 1 / (d.XErr[i] * d.XErr[i])
		wy[i] = 1 / (d.YErr[i] * d.YErr[i])
		alpha[i] = math.Sqrt(wx[i] * wy[i])
	}

	b, err := olsSlope(d.X, d.Y)
	if err != nil {
		return Fit{}, err
	}

	w := make([]float64, n)
	beta := make([]float64, n)
	var xbar, ybar float64
	weigh := func(b float64) {
		var sw, swx, swy float64
		for i := 0; i < n; i++ {
			w[i] = wx[i] * wy[i] / (wx[i] + b*b*wy[i] - 2*b*rho[i]*alpha[i])
			sw += w[i]
			swx += w[i] * d.X[i]
			swy += w[i] * d.Y[i]
		}
		xbar, ybar = swx/sw, swy/sw
		for i := 0; i < n; i++ {
			u, v := d.X[i]-xbar, d.Y[i]-ybar
			beta[i] = w[i] * (u/wy[i] + b*v/wx[i] - (b*u+v)*rho[i]/alpha[i])
		}
	}

	iter, converged := 0, false
	for iter < y.opts.MaxIterations {
		iter++
		weigh(b)
		var num, den float64
		for i := 0; i < n; i++ {
			num += w[i] * beta[i] * (d.Y[i] - ybar)
			den += w[i] * beta[i] * (d.X[i] - xbar)
		}
		if den == 0 {
			return Fit{}, ErrDegenerate
		}
		next := num / den
		done := math.Abs(next-b) <= y.opts.Tolerance*math.Abs(next)
		b = next
		if done {
			converged = true

			break
		}
	}
	if !converged {
		return Fit{}, fmt.Errorf("%w after %d iterations", ErrNotConverged, iter)
	}

	weigh(b)
	a := ybar - b*xbar

	var sw, swxa float64
	for i := 0; i < n; i++ {
		sw += w[i]
		swxa += w[i] * (xbar + beta[i])
	}
	xadj := swxa / sw
	var swu2 float64
	for i := 0; i < n; i++ {
		u := xbar + beta[i] - xadj
		swu2 += w[i] * u * u
	}
	if swu2 == 0 {
		return Fit{}, ErrDegenerate
	}
	varB := 1 / swu2
	varA := 1/sw + xadj*xadj*varB

	fit := Fit{
		Slope:        b,
		SlopeErr:     math.Sqrt(varB),
		Intercept:    a,
		InterceptErr: math.Sqrt(varA),
		Covariance:   -xadj * varB,
		N:            n,
		Iterations:   iter,
	}
	if n > 2 {
		var chi2 float64
		for i := 0; i < n; i++ {
			r := d.Y[i] - a - b*d.X[i]
			chi2 += w[i] * r * r
		}
		fit.MSWD = chi2 / float64(n-2)
	}

	return fit, nil
}

// olsSlope returns the unweighted least-squares slope used as starting value.
func olsSlope(x, y []float64) (float64, error) {
	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= float64(len(x))
	my /= float64(len(y))

	var sxx, sxy float64
	for i := range x {
		sxx += (x[i] - mx) * (x[i] - mx)
		sxy += (x[i] - mx) * (y[i] - my)
	}
	if sxx == 0 {
		return 0, ErrDegenerate
	}

	return sxy / sxx, nil
}

// correlations returns ρ per point.
func correlations(d Data) []float64 {
	n := d.Len()
	rho := make([]float64, n)
	switch {
	case d.hasComponents():
		for i := 0; i < n; i++ {
			rho[i] = sharedDenominatorRho(d.D[i], d.DErr[i], d.XN[i], d.XNErr[i], d.YN[i], d.YNErr[i])
		}
	case len(d.Rho) == n:
		copy(rho, d.Rho)
	}

	return rho
}

// sharedDenominatorRho is the correlation of xn/d and yn/d from independent
// components. Zero components yield 0.
func sharedDenominatorRho(dv, de, xn, xne, yn, yne float64) float64 {
	if dv == 0 || xn == 0 || yn == 0 {
		return 0
	}
	rd := (de / dv) * (de / dv)
	rx := (xne / xn) * (xne / xn)
	ry := (yne / yn) * (yne / yn)
	den := math.Sqrt((rx + rd) * (ry + rd))
	if den == 0 {
		return 0
	}

	return rd / den
}

func validate(d Data) error {
	n := d.Len()
	if len(d.Y) != n || len(d.XErr) != n || len(d.YErr) != n {
		return ErrLengthMismatch
	}
	if d.Rho != nil && len(d.Rho) != n {
		return ErrLengthMismatch
	}
	if n < 2 {
		return ErrTooFewPoints
	}
	for i := 0; i < n; i++ {
		for _, v := range [...]float64{d.X[i], d.Y[i], d.XErr[i], d.YErr[i]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrBadInput
			}
		}
		if d.XErr[i] <= 0 || d.YErr[i] <= 0 {
			return ErrZeroError
		}
		if d.Rho != nil && !(math.Abs(d.Rho[i]) <= 1) {
			return ErrBadInput
		}
	}

	return nil
}
