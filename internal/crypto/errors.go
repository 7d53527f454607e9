package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the IV size is invalid.
	ErrInvalidIVSize = errors.New("invalid IV size")

	// ErrInvalidCiphertextSize is returned when the ciphertext is shorter than
	// an IV or is not block aligned.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrRandomSource is returned when the random reader fails.
	ErrRandomSource = errors.New("random source failed")
)
