package constants

import "errors"

// Sentinel errors for constants construction and decoding.
var (
	// ErrInvalidConstant indicates a decay constant, ratio, mass or scalar that is
	// non-positive, NaN or infinite, or a negative uncertainty.
	ErrInvalidConstant = errors.New("constants: invalid constant")

	// ErrUnknownFormat indicates an unsupported configuration format.
	ErrUnknownFormat = errors.New("constants: unknown configuration format")

	// ErrDecode wraps syntax or type errors reported by the YAML/TOML decoders.
	ErrDecode = errors.New("constants: cannot decode configuration")
)
