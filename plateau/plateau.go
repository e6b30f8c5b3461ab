package plateau

import "math"

// Find returns the plateau of the step series, if any.
//
// ages, errors (1σ) and k39 are parallel per-step slices in heating order.
// ok is false when no run satisfies the criteria. Among qualifying runs the
// longest wins, then the one with the larger ³⁹Ar(K) fraction, then the
// earliest.
func Find(ages, errors, k39 []float64, opts ...Option) (Span, bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c, ok, err := find(ages, errors, k39, o)

	return c.span, ok, err
}

// CalculateAge finds the plateau and averages its ages according to the
// configured Kind.
func CalculateAge(ages, errors, k39 []float64, opts ...Option) (Result, bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c, ok, err := find(ages, errors, k39, o)
	if err != nil || !ok {
		return Result{}, false, err
	}

	sx := c.span
	res := Result{Span: sx, Fraction: c.fraction, N: sx.Len()}
	switch o.Kind {
	case VolumeFraction:
		res.Age, res.Error, err = VolumeWeightedMean(ages[sx.Start:sx.End], errors[sx.Start:sx.End], k39[sx.Start:sx.End])
	default:
		res.Age, res.Error, err = WeightedMean(ages[sx.Start:sx.End], errors[sx.Start:sx.End])
	}
	if err != nil {
		return Result{}, false, err
	}
	if m, err := MSWD(ages[sx.Start:sx.End], errors[sx.Start:sx.End]); err == nil {
		res.MSWD = m
	}

	return res, true, nil
}

// candidate is a qualifying run.
type candidate struct {
	span     Span
	fraction float64
}

// better reports whether c beats best under the documented tie-break.
func (c candidate) better(best candidate) bool {
	if c.span.Len() != best.span.Len() {
		return c.span.Len() > best.span.Len()
	}
	if c.fraction != best.fraction {
		return c.fraction > best.fraction
	}

	return c.span.Start < best.span.Start
}

func find(ages, errors, k39 []float64, o Options) (candidate, bool, error) {
	if err := validate(ages, errors, k39); err != nil {
		return candidate{}, false, err
	}
	if o.Method == MethodMahon1996 {
		for _, e := range errors {
			if e == 0 {
				return candidate{}, false, ErrZeroError
			}
		}
	}

	var total float64
	for _, s := range k39 {
		total += s
	}
	if total == 0 {
		return candidate{}, false, nil
	}

	var (
		best  candidate
		found bool
		n     = len(ages)
	)
	for i := 0; i < n; i++ {
		var released float64
		for j := i; j < n; j++ {
			released += k39[j]
			if o.Method == MethodFleck1977 && !overlapsAll(ages, errors, i, j, o.OverlapSigma) {
				break
			}

			c := candidate{span: Span{Start: i, End: j + 1}, fraction: released / total}
			if c.span.Len() < o.MinSteps || c.fraction < o.MinFraction {
				continue
			}
			if o.Method == MethodMahon1996 && !mswdAccepted(ages[i:j+1], errors[i:j+1], o.OverlapSigma) {
				continue
			}
			if !found || c.better(best) {
				best, found = c, true
			}
		}
	}

	return best, found, nil
}

// overlapsAll reports whether step j overlaps every step in [i, j).
func overlapsAll(ages, errors []float64, i, j int, sigma float64) bool {
	for k := i; k < j; k++ {
		if math.Abs(ages[k]-ages[j]) >= sigma*(errors[k]+errors[j]) {
			return false
		}
	}

	return true
}

// mswdAccepted applies the Wendt & Carl (1991) band 1 + σ·√(2/(n−1)).
// A single step is accepted.
func mswdAccepted(ages, errors []float64, sigma float64) bool {
	n := len(ages)
	if n < 2 {
		return n == 1
	}
	m, err := MSWD(ages, errors)
	if err != nil {
		return false
	}

	return m <= 1+sigma*math.Sqrt(2/float64(n-1))
}

func validate(ages, errors, k39 []float64) error {
	if len(k39) != len(ages) {
		return ErrLengthMismatch
	}
	if err := checkPairs(ages, errors); err != nil {
		return err
	}
	for _, s := range k39 {
		if s < 0 || !finite(s) {
			return ErrBadInput
		}
	}

	return nil
}
