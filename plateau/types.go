package plateau

import (
	"fmt"
	"strings"
)

// Method selects the plateau acceptance rule.
type Method int

const (
	// MethodFleck1977 requires pairwise overlap of every step in the run.
	MethodFleck1977 Method = iota

	// MethodMahon1996 accepts a run whose MSWD is statistically consistent
	// with a single age. A one-step run is accepted, as under Fleck.
	MethodMahon1996
)

// String returns the conventional name of the method.
func (m Method) String() string {
	switch m {
	case MethodFleck1977:
		return "fleck 1977"
	case MethodMahon1996:
		return "mahon 1996"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "fleck 1977" / "fleck1977" / "fleck" and the Mahon
// equivalents, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "") {
	case "fleck1977", "fleck":
		return MethodFleck1977, nil
	case "mahon1996", "mahon":
		return MethodMahon1996, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Kind selects how the plateau age is averaged.
type Kind int

const (
	// InverseVariance weights each step by 1/e².
	InverseVariance Kind = iota

	// VolumeFraction weights each step by its ³⁹Ar(K) signal.
	VolumeFraction
)

// String returns the conventional name of the kind.
func (k Kind) String() string {
	switch k {
	case InverseVariance:
		return "inverse_variance"
	case VolumeFraction:
		return "vol_fraction"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "inverse_variance" or "vol_fraction" (also with hyphens).
func ParseKind(s string) (Kind, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "inverse_variance":
		return InverseVariance, nil
	case "vol_fraction", "volume_fraction":
		return VolumeFraction, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Span is a half-open step range [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of steps in the span.
func (s Span) Len() int { return s.End - s.Start }

// String formats the span as "[Start,End)".
func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Result is a detected plateau and its age.
type Result struct {
	Span     Span
	Age      float64 // weighted mean age
	Error    float64 // 1σ error of Age
	Fraction float64 // ³⁹Ar(K) fraction released in Span
	MSWD     float64 // MSWD about the inverse-variance mean; 0 for a single step or a zero error
	N        int     // number of steps
}

// Options configures plateau detection.
//
// Method       – acceptance rule (default MethodFleck1977).
// OverlapSigma – error multiplier for overlap and MSWD band (default 2).
// MinFraction  – minimum ³⁹Ar(K) fraction of the run (default 0.5).
// MinSteps     – minimum number of steps (default 3).
// Kind         – averaging used by CalculateAge (default InverseVariance).
type Options struct {
	Method       Method
	OverlapSigma float64
	MinFraction  float64
	MinSteps     int
	Kind         Kind
}

// Option represents a functional option for plateau detection.
type Option func(*Options)

// WithMethod selects the acceptance rule. Panics with ErrUnknownMethod on an
// undefined value.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != MethodFleck1977 && m != MethodMahon1996 {
			panic(ErrUnknownMethod.Error())
		}
		o.Method = m
	}
}

// WithOverlapSigma sets the error multiplier. Must be positive.
func WithOverlapSigma(sigma float64) Option {
	return func(o *Options) {
		if !(sigma > 0) {
			panic(ErrBadOverlapSigma.Error())
		}
		o.OverlapSigma = sigma
	}
}

// WithMinFraction sets the minimum ³⁹Ar(K) fraction. Must be within [0, 1].
func WithMinFraction(f float64) Option {
	return func(o *Options) {
		if !(f >= 0 && f <= 1) {
			panic(ErrBadMinFraction.Error())
		}
		o.MinFraction = f
	}
}

// WithMinSteps sets the minimum run length. Must be at least 1.
func WithMinSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMinSteps.Error())
		}
		o.MinSteps = n
	}
}

// WithKind selects the plateau-age averaging.
func WithKind(k Kind) Option {
	return func(o *Options) {
		if k != InverseVariance && k != VolumeFraction {
			panic(ErrUnknownKind.Error())
		}
		o.Kind = k
	}
}

// DefaultOptions returns the conventional plateau criteria:
//   - Method:       MethodFleck1977
//   - OverlapSigma: 2
//   - MinFraction:  0.5
//   - MinSteps:     3
//   - Kind:         InverseVariance
func DefaultOptions() Options {
	return Options{
		Method:       MethodFleck1977,
		OverlapSigma: 2,
		MinFraction:  0.5,
		MinSteps:     3,
		Kind:         InverseVariance,
	}
}
