package rijndael

import "errors"

var (
	// ErrMalformedState is returned when an operand is not a 16-byte block,
	// a round key is not 16 bytes, or fewer than two round keys are supplied.
	ErrMalformedState = errors.New("malformed cipher state")

	// ErrInvalidIV is returned when a chaining value is not one block long.
	ErrInvalidIV = errors.New("invalid initialization vector")

	// ErrUnsupportedMode is returned for an unknown BlockMode.
	ErrUnsupportedMode = errors.New("unsupported block mode")

	// ErrInvalidPadding is returned when padding cannot be removed.
	ErrInvalidPadding = errors.New("invalid padding")
)
