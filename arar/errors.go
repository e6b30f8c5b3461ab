package arar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ararpy/ufloat"
)

// Sentinel errors returned by the arar package.
var (
	// ErrDivisionByZero is the ufloat sentinel, re-exported so callers of this
	// package can match correction failures without importing ufloat.
	ErrDivisionByZero = ufloat.ErrDivisionByZero

	// ErrInvalidOperand indicates an Operand that does not resolve to a number
	// (unparsable text, negative standard deviation, zero Operand).
	ErrInvalidOperand = errors.New("arar: invalid operand")

	// ErrInvalidArgument indicates a raw numeric argument outside its domain.
	ErrInvalidArgument = errors.New("arar: invalid argument")
)

// Operation names used when wrapping errors.
const (
	opFixedK3739 = "ApplyFixedK3739"
	opFRatio     = "CalculateFRatio"
	opErrorF     = "CalculateErrorF"
	opDecayTime  = "CalculateDecayTime"
)

// araErrorf wraps err with the operation name, keeping errors.Is matching intact.
func araErrorf(op string, err error) error {
	return fmt.Errorf("arar: %s: %w", op, err)
}
