package chaoskey

import "errors"

var (
	// ErrOutOfRange is returned when a sample is outside (-8, 8) or is NaN.
	ErrOutOfRange = errors.New("sample out of range (-8, 8)")

	// ErrInsufficientSamples is returned when a sequence is shorter than the
	// derivation requires.
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrSequenceMismatch is returned when the four sequences differ in length.
	ErrSequenceMismatch = errors.New("sample sequences differ in length")

	// ErrInvalidRounds is returned for a round count below one.
	ErrInvalidRounds = errors.New("invalid round count")
)
