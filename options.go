package chaoscrypt

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vihar-202001110/CryptographyProject/internal/chaoskey"
	"github.com/vihar-202001110/CryptographyProject/internal/pendulum"
	"github.com/vihar-202001110/CryptographyProject/internal/rijndael"
)

// Variant selects the cipher applied to payloads.
type Variant string

const (
	// VariantAESCBC encrypts with AES-256-CBC under the 32-byte master key.
	// Containers carry IV ++ ciphertext.
	VariantAESCBC Variant = "aes-cbc"
	// VariantRijndael encrypts with the custom block cipher driven directly
	// by the derived round keys.
	VariantRijndael Variant = "rijndael"
)

// ParseVariant converts a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantAESCBC, VariantRijndael:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
}

// BlockMode selects how the custom cipher links blocks.
type BlockMode = rijndael.BlockMode

// Block mode constants.
const (
	// BlockIndependent encrypts every block on its own. Repeated plaintext
	// blocks yield repeated ciphertext blocks.
	BlockIndependent = rijndael.ModeIndependent
	// BlockChained chains blocks from a random IV stored in front of the
	// ciphertext.
	BlockChained = rijndael.ModeChained
)

// ParseBlockMode converts a configuration string to a BlockMode.
func ParseBlockMode(s string) (BlockMode, error) {
	switch s {
	case "independent":
		return BlockIndependent, nil
	case "chained":
		return BlockChained, nil
	}
	return 0, fmt.Errorf("%w: block mode %q", ErrInvalidOption, s)
}

// Padding names a padding scheme.
type Padding string

const (
	// PaddingZero appends 1 to 16 zero bytes and strips every trailing zero
	// on decrypt, so plaintexts ending in zero bytes lose them.
	PaddingZero Padding = "zero"
	// PaddingPKCS7 appends n bytes of value n.
	PaddingPKCS7 Padding = "pkcs7"
)

func (p Padding) scheme() (rijndael.PaddingScheme, error) {
	switch p {
	case PaddingZero:
		return rijndael.ZeroPadding{}, nil
	case PaddingPKCS7:
		return rijndael.PKCS7Padding{}, nil
	}
	return nil, fmt.Errorf("%w: padding %q", ErrInvalidOption, string(p))
}

// engineConfig holds configuration for the engine.
type engineConfig struct {
	variant  Variant
	rounds   int
	mode     BlockMode
	padding  Padding
	compress bool
	source   pendulum.SampleSource
	logger   *logrus.Logger
}

func defaultConfig() engineConfig {
	return engineConfig{
		variant: VariantAESCBC,
		rounds:  chaoskey.DefaultRounds,
		mode:    BlockIndependent,
		padding: PaddingZero,
		source:  pendulum.Simulator{},
	}
}

// Option configures the engine.
type Option func(*engineConfig)

// WithVariant sets the cipher variant.
// Default: VariantAESCBC
func WithVariant(v Variant) Option {
	return func(c *engineConfig) {
		c.variant = v
	}
}

// WithRounds sets the number of round keys derived for VariantRijndael.
// The block transform runs rounds-1 rounds.
// Default: 10
func WithRounds(n int) Option {
	return func(c *engineConfig) {
		c.rounds = n
	}
}

// WithBlockMode sets the block mode of VariantRijndael.
func WithBlockMode(m BlockMode) Option {
	return func(c *engineConfig) {
		c.mode = m
	}
}

// WithPadding sets the padding scheme for both variants.
func WithPadding(p Padding) Option {
	return func(c *engineConfig) {
		c.padding = p
	}
}

// WithCompression enables LZMA compression of payloads before encryption.
func WithCompression(enabled bool) Option {
	return func(c *engineConfig) {
		c.compress = enabled
	}
}

// WithSampleSource replaces the double pendulum simulator.
func WithSampleSource(s pendulum.SampleSource) Option {
	return func(c *engineConfig) {
		c.source = s
	}
}

// WithLogger sets the logger. Stage progress is logged at debug level.
func WithLogger(l *logrus.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}
