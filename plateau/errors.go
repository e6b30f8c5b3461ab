package plateau

import "errors"

// Sentinel errors returned by the plateau package.
var (
	// ErrLengthMismatch indicates that the input series differ in length.
	ErrLengthMismatch = errors.New("plateau: input lengths differ")

	// ErrEmptyInput indicates an empty step series.
	ErrEmptyInput = errors.New("plateau: empty input")

	// ErrBadInput indicates a NaN or infinite value, a negative error or a
	// negative ³⁹Ar signal.
	ErrBadInput = errors.New("plateau: invalid value in input")

	// ErrZeroError indicates a zero error where an inverse-variance weight is needed.
	ErrZeroError = errors.New("plateau: zero error in weighted mean")

	// ErrZeroWeight indicates that the ³⁹Ar weights of a volume-weighted mean sum to zero.
	ErrZeroWeight = errors.New("plateau: weights sum to zero")

	// ErrBadOverlapSigma indicates OverlapSigma ≤ 0.
	ErrBadOverlapSigma = errors.New("plateau: OverlapSigma must be positive")

	// ErrBadMinFraction indicates MinFraction outside [0, 1].
	ErrBadMinFraction = errors.New("plateau: MinFraction must be within [0, 1]")

	// ErrBadMinSteps indicates MinSteps < 1.
	ErrBadMinSteps = errors.New("plateau: MinSteps must be at least 1")

	// ErrUnknownMethod indicates an unrecognised detection method.
	ErrUnknownMethod = errors.New("plateau: unknown method")

	// ErrUnknownKind indicates an unrecognised plateau-age kind.
	ErrUnknownKind = errors.New("plateau: unknown kind")
)
