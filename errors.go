package chaoscrypt

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrEncryptionFailed matches every *StageError raised while sealing.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed matches every *StageError raised while opening.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnsupportedVariant is returned for an unknown Variant.
	ErrUnsupportedVariant = errors.New("unsupported variant")

	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("invalid option")

	// ErrKeyMismatch is returned when keys derived for one variant are used
	// with an engine configured for another.
	ErrKeyMismatch = errors.New("keys do not match engine variant")
)

// Stages reported by StageError.
const (
	StageParams     = "params"
	StageDerivation = "derivation"
	StageCipher     = "cipher"
	StageContainer  = "container"
	StageEnvelope   = "envelope"
	StageKeyfile    = "keyfile"
)

// Operations reported by StageError.
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
	OpDerive  = "derive"
)

// ChaoscryptError is implemented by all errors raised by this package.
type ChaoscryptError interface {
	error
	ChaoscryptError() // marker method
}

// StageError identifies which stage of an operation failed.
type StageError struct {
	Op    string // "encrypt", "decrypt", "derive"
	Stage string // "params", "derivation", "cipher", "container", "envelope", "keyfile"
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed at %s: %v", e.Op, e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *StageError) Is(target error) bool {
	switch e.Op {
	case OpEncrypt:
		return target == ErrEncryptionFailed
	case OpDecrypt:
		return target == ErrDecryptionFailed
	}
	return false
}

// ChaoscryptError implements the ChaoscryptError interface.
func (e *StageError) ChaoscryptError() {}

func stageErr(op, stage string, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Op: op, Stage: stage, Err: err}
}
