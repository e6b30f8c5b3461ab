package arar

import (
	"fmt"
	"math"
)

// CalculateDecayFactor returns the correction for decay of ³⁷Ar or ³⁹Ar
// during and after a segmented irradiation:
//
//	Σ pᵢtᵢ / Σ pᵢ(1 − e^{−λtᵢ}) / (λ·e^{λδtᵢ})
//
// with λ = dc and segment i of power pᵢ and duration tᵢ, whose start lies δtᵢ
// before the analysis. Returns 1 when the denominator is zero or the result is not
// finite (no segments, zero power, zero dc).
func CalculateDecayFactor(dc float64, segments []Segment) float64 {
	if dc == 0 {
		return 1
	}

	var a, b float64
	for _, s := range segments {
		a += s.Power * s.Duration
		b += s.Power * (1 - math.Exp(-dc*s.Duration)) / (dc * math.Exp(dc*s.Elapsed))
	}
	if b == 0 {
		return 1
	}
	f := a / b
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}

	return f
}

// CalculateDecayTime returns the time over which a quantity decaying with
// constant dc falls by the factor f: ln(f)/dc.
// f must be positive and dc non-zero, otherwise ErrInvalidArgument.
func CalculateDecayTime(dc, f float64) (float64, error) {
	if !(f > 0) || dc == 0 || math.IsNaN(dc) || math.IsInf(f, 0) {
		return 0, araErrorf(opDecayTime, fmt.Errorf("%w: dc=%g f=%g", ErrInvalidArgument, dc, f))
	}

	return math.Log(f) / dc, nil
}
