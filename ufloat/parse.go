package ufloat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads an uncertain number from text.
//
// Accepted forms:
//
//	"1.5+/-0.2"   "1.5 +/- 0.2"   "1.5±0.2"   → 1.5 with σ = 0.2
//	"1.53(12)"                                 → 1.53 with σ = 0.12 (last-digit notation)
//	"1.5(0.2)"                                 → 1.5 with σ = 0.2 (explicit σ in parentheses)
//	"1.5"                                      → 1.5 with σ = 1 on the last digit (0.1)
//	"15"                                       → 15 with σ = 1
//
// Returns ErrParse (wrapped with the offending text) on anything else.
func Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty string", ErrParse)
	}

	for _, sep := range []string{"+/-", "±"} {
		if i := strings.Index(s, sep); i >= 0 {
			nominal, err := parseFloat(s[:i])
			if err != nil {
				return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
			}
			std, err := parseFloat(s[i+len(sep):])
			if err != nil || std < 0 {
				return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
			}

			return New(nominal, std), nil
		}
	}

	if open := strings.IndexByte(s, '('); open >= 0 {
		if !strings.HasSuffix(s, ")") {
			return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
		}
		mant := strings.TrimSpace(s[:open])
		inner := strings.TrimSpace(s[open+1 : len(s)-1])
		nominal, err := parseFloat(mant)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
		}
		if strings.ContainsAny(inner, ".eE") {
			std, err := parseFloat(inner)
			if err != nil || std < 0 {
				return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
			}

			return New(nominal, std), nil
		}
		digits, err := strconv.ParseUint(inner, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
		}

		return New(nominal, float64(digits)*lastDigit(mant)), nil
	}

	nominal, err := parseFloat(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
	}

	return New(nominal, lastDigit(s)), nil
}

// MustParse is Parse that panics on error. Intended for constants and tests.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err.Error())
	}

	return v
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrParse
	}

	return f, nil
}

// lastDigit returns the magnitude of one unit in the last written digit
// of a decimal literal: "1.53" → 0.01, "15" → 1, "1.5e3" → 100.
func lastDigit(s string) float64 {
	s = strings.TrimLeft(strings.TrimSpace(s), "+-")
	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		if e, err := strconv.Atoi(s[i+1:]); err == nil {
			exp = e
		}
		s = s[:i]
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		exp -= len(s) - dot - 1
	}

	return math.Pow10(exp)
}
