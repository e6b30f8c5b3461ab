package ufloat

import "errors"

// Sentinel errors returned by ufloat operations.
var (
	// ErrDivisionByZero indicates a division whose divisor has a zero nominal value.
	ErrDivisionByZero = errors.New("ufloat: division by zero")

	// ErrDomain indicates a function evaluated outside its real domain
	// (log of a non-positive number, fractional power of a negative number).
	ErrDomain = errors.New("ufloat: math domain error")

	// ErrParse indicates text that could not be read as an uncertain number.
	ErrParse = errors.New("ufloat: cannot parse uncertain number")

	// ErrNegativeStdDev indicates a negative or NaN standard deviation.
	ErrNegativeStdDev = errors.New("ufloat: standard deviation must be non-negative")
)
