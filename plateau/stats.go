package plateau

import "math"

// WeightedMean returns the inverse-variance weighted mean of values and its
// 1σ error sqrt(1/Σ(1/e²)).
func WeightedMean(values, errors []float64) (mean, sigma float64, err error) {
	if err = checkPairs(values, errors); err != nil {
		return 0, 0, err
	}

	var sw, swx float64
	for i, v := range values {
		if errors[i] == 0 {
			return 0, 0, ErrZeroError
		}
		w := 1 / (errors[i] * errors[i])
		sw += w
		swx += w * v
	}

	return swx / sw, math.Sqrt(1 / sw), nil
}

// VolumeWeightedMean returns Σ(w·v)/Σw with error sqrt(Σ(w·e)²)/Σw.
func VolumeWeightedMean(values, errors, weights []float64) (mean, sigma float64, err error) {
	if err = checkPairs(values, errors); err != nil {
		return 0, 0, err
	}
	if len(weights) != len(values) {
		return 0, 0, ErrLengthMismatch
	}

	var sw, swx, swe2 float64
	for i, v := range values {
		w := weights[i]
		if w < 0 || !finite(w) {
			return 0, 0, ErrBadInput
		}
		sw += w
		swx += w * v
		swe2 += (w * errors[i]) * (w * errors[i])
	}
	if sw == 0 {
		return 0, 0, ErrZeroWeight
	}

	return swx / sw, math.Sqrt(swe2) / sw, nil
}

// MSWD returns the mean square weighted deviation of values about their
// inverse-variance mean, with n − 1 degrees of freedom. A single value
// yields 0.
func MSWD(values, errors []float64) (float64, error) {
	mean, _, err := WeightedMean(values, errors)
	if err != nil {
		return 0, err
	}
	if len(values) < 2 {
		return 0, nil
	}

	var chi2 float64
	for i, v := range values {
		d := (v - mean) / errors[i]
		chi2 += d * d
	}

	return chi2 / float64(len(values)-1), nil
}

// checkPairs validates a (value, error) series.
func checkPairs(values, errors []float64) error {
	if len(values) != len(errors) {
		return ErrLengthMismatch
	}
	if len(values) == 0 {
		return ErrEmptyInput
	}
	for i, v := range values {
		if !finite(v) || !finite(errors[i]) || errors[i] < 0 {
			return ErrBadInput
		}
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
