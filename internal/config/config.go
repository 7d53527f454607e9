// Package config loads settings for the chaoscrypt command.
//
// Values are layered: defaults, then a YAML file, then a .env file, then
// CHAOSCRYPT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "chaoscrypt.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHAOSCRYPT_"

// ErrInvalidConfig is returned when a setting has an unusable value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds command settings.
type Config struct {
	EncryptedDir string `yaml:"encrypted_dir"`
	DecryptedDir string `yaml:"decrypted_dir"`
	KeyDir       string `yaml:"key_dir"`
	Variant      string `yaml:"variant"`
	Rounds       int    `yaml:"rounds"`
	BlockMode    string `yaml:"block_mode"`
	Padding      string `yaml:"padding"`
	Compress     bool   `yaml:"compress"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		EncryptedDir: "Encrypted",
		DecryptedDir: "Decrypted",
		KeyDir:       "Keys",
		Variant:      "aes-cbc",
		Rounds:       10,
		BlockMode:    "independent",
		Padding:      "zero",
		LogLevel:     "info",
	}
}

// Load builds a Config from path and the environment. A missing file is
// not an error. envFile names an optional dotenv file; empty skips it.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
			}
		}
	}

	if envFile != "" {
		// godotenv never overrides variables already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ENCRYPTED_DIR": &c.EncryptedDir,
		"DECRYPTED_DIR": &c.DecryptedDir,
		"KEY_DIR":       &c.KeyDir,
		"VARIANT":       &c.Variant,
		"BLOCK_MODE":    &c.BlockMode,
		"PADDING":       &c.Padding,
		"LOG_LEVEL":     &c.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "ROUNDS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sROUNDS=%q", ErrInvalidConfig, EnvPrefix, v)
		}
		c.Rounds = n
	}
	if v, ok := lookup(EnvPrefix + "COMPRESS"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sCOMPRESS=%q", ErrInvalidConfig, EnvPrefix, v)
		}
		c.Compress = b
	}
	return nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Variant {
	case "aes-cbc", "rijndael":
	default:
		return fmt.Errorf("%w: variant %q", ErrInvalidConfig, c.Variant)
	}
	switch c.BlockMode {
	case "independent", "chained":
	default:
		return fmt.Errorf("%w: block_mode %q", ErrInvalidConfig, c.BlockMode)
	}
	switch c.Padding {
	case "zero", "pkcs7":
	default:
		return fmt.Errorf("%w: padding %q", ErrInvalidConfig, c.Padding)
	}
	if c.Rounds < 2 {
		return fmt.Errorf("%w: rounds %d, want at least 2", ErrInvalidConfig, c.Rounds)
	}
	if c.EncryptedDir == "" || c.DecryptedDir == "" || c.KeyDir == "" {
		return fmt.Errorf("%w: directories must not be empty", ErrInvalidConfig)
	}
	return nil
}
