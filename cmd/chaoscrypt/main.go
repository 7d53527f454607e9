// Command chaoscrypt encrypts text and images into container PNGs under keys
// derived from a double pendulum, and decrypts them again.
//
// Usage:
//
//	chaoscrypt [-config file] [-env file] encrypt <text|image-path> <text|image> [keyfile]
//	chaoscrypt [-config file] [-env file] decrypt <container.png> <keyfile>
//	chaoscrypt [-config file] [-env file] keygen
//
// A text value of "-" is read from stdin.
// Every command prints one JSON object on stdout. Logs go to stderr.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	chaoscrypt "github.com/vihar-202001110/CryptographyProject"
	"github.com/vihar-202001110/CryptographyProject/internal/config"
	"github.com/vihar-202001110/CryptographyProject/internal/keyfile"
)

// Config holds the process environment of a run.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
}

// DefaultConfig returns a Config bound to the real process.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Now:    time.Now,
	}
}

// Response is the JSON body printed by every command.
type Response struct {
	Success  bool   `json:"success"`
	Filepath string `json:"filepath,omitempty"`
	Key      string `json:"key,omitempty"`
	KeyID    string `json:"key_id,omitempty"`
	Data     string `json:"data,omitempty"`
	Message  string `json:"message,omitempty"`
}

var errUsage = errors.New("usage: chaoscrypt [-config file] [-env file] <encrypt|decrypt|keygen> [args]")

// app is one invocation of the command.
type app struct {
	cfg    config.Config
	env    Config
	engine *chaoscrypt.Engine
	log    *logrus.Logger
}

func run(args []string, cfg Config) error {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	fs := flag.NewFlagSet("chaoscrypt", flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	configPath := fs.String("config", config.DefaultFile, "YAML configuration file")
	envPath := fs.String("env", ".env", "dotenv file with CHAOSCRYPT_* overrides")
	if len(args) == 0 {
		return respondErr(cfg.Stdout, errUsage)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return respondErr(cfg.Stdout, err)
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return respondErr(cfg.Stdout, errUsage)
	}

	a, err := newApp(*configPath, *envPath, cfg)
	if err != nil {
		return respondErr(cfg.Stdout, err)
	}

	var resp *Response
	switch rest[0] {
	case "encrypt":
		resp, err = a.encrypt(rest[1:])
	case "decrypt":
		resp, err = a.decrypt(rest[1:])
	case "keygen":
		resp, err = a.keygen()
	default:
		err = fmt.Errorf("unknown command: %s", rest[0])
	}
	if err != nil {
		a.log.WithError(err).Error("command failed")
		return respondErr(cfg.Stdout, err)
	}
	resp.Success = true
	return respond(cfg.Stdout, resp)
}

func newApp(configPath, envPath string, env Config) (*app, error) {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(env.Stderr)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level %q", config.ErrInvalidConfig, cfg.LogLevel)
	}
	log.SetLevel(level)

	variant, err := chaoscrypt.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	mode, err := chaoscrypt.ParseBlockMode(cfg.BlockMode)
	if err != nil {
		return nil, err
	}
	engine, err := chaoscrypt.New(
		chaoscrypt.WithVariant(variant),
		chaoscrypt.WithRounds(cfg.Rounds),
		chaoscrypt.WithBlockMode(mode),
		chaoscrypt.WithPadding(chaoscrypt.Padding(cfg.Padding)),
		chaoscrypt.WithCompression(cfg.Compress),
		chaoscrypt.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, env: env, engine: engine, log: log}, nil
}

func (a *app) timestamp() string {
	return strconv.FormatInt(a.env.Now().Unix(), 10)
}

// loadOrCreateKey reads path if it names an existing file, otherwise
// generates fresh parameters and saves them under the key directory.
func (a *app) loadOrCreateKey(path string) (chaoscrypt.Parameters, string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			p, err := keyfile.Load(path)
			return p, path, err
		}
	}

	p, err := a.engine.GenerateParameters()
	if err != nil {
		return chaoscrypt.Parameters{}, "", err
	}
	if err := os.MkdirAll(a.cfg.KeyDir, 0o700); err != nil {
		return chaoscrypt.Parameters{}, "", fmt.Errorf("failed to create key directory: %w", err)
	}
	path = filepath.Join(a.cfg.KeyDir, "key_"+a.timestamp())
	if err := keyfile.Save(path, p); err != nil {
		return chaoscrypt.Parameters{}, "", err
	}
	a.log.WithField("path", path).Info("generated key file")
	return p, path, nil
}

func (a *app) keygen() (*Response, error) {
	p, path, err := a.loadOrCreateKey("")
	if err != nil {
		return nil, err
	}
	keys, err := a.engine.DeriveKeys(p)
	if err != nil {
		return nil, err
	}
	return &Response{Key: path, KeyID: keys.ID}, nil
}

func (a *app) encrypt(args []string) (*Response, error) {
	if len(args) < 2 {
		return nil, errors.New("usage: chaoscrypt encrypt <text|image-path> <text|image> [keyfile]")
	}
	value, kind := args[0], args[1]
	var keyPath string
	if len(args) > 2 {
		keyPath = args[2]
	}

	var img image.Image
	var stem, ext string
	switch kind {
	case "text":
		stem = "text"
		if value == "-" {
			data, err := io.ReadAll(a.env.Stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			value = string(data)
		}
	case "image":
		var err error
		img, err = readImage(value)
		if err != nil {
			return nil, err
		}
		base := filepath.Base(value)
		ext = strings.TrimPrefix(filepath.Ext(base), ".")
		stem = strings.TrimSuffix(base, filepath.Ext(base))
	default:
		return nil, fmt.Errorf("unknown data type %q, want text or image", kind)
	}

	p, keyPath, err := a.loadOrCreateKey(keyPath)
	if err != nil {
		return nil, err
	}
	keys, err := a.engine.DeriveKeys(p)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(a.cfg.EncryptedDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	out := filepath.Join(a.cfg.EncryptedDir, stem+"-"+a.timestamp()+".png")
	if img != nil {
		_, err = a.engine.SealImageFile(keys, out, img, ext)
	} else {
		_, err = a.engine.SealFile(keys, out, chaoscrypt.KindText, []byte(value))
	}
	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{"path": out, "key_id": keys.ID}).Info("encrypted")
	return &Response{Filepath: out, Key: keyPath, KeyID: keys.ID}, nil
}

func (a *app) decrypt(args []string) (*Response, error) {
	if len(args) < 2 {
		return nil, errors.New("usage: chaoscrypt decrypt <container.png> <keyfile>")
	}
	containerPath, keyPath := args[0], args[1]

	p, err := keyfile.Load(keyPath)
	if err != nil {
		return nil, err
	}
	keys, err := a.engine.DeriveKeys(p)
	if err != nil {
		return nil, err
	}
	payload, err := a.engine.OpenFile(keys, containerPath)
	if err != nil {
		return nil, err
	}

	if payload.Kind == chaoscrypt.KindText {
		return &Response{Data: string(payload.Text), KeyID: keys.ID}, nil
	}

	if err := os.MkdirAll(a.cfg.DecryptedDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	ext := payload.Extension
	if ext == "" {
		ext = "png"
	}
	out := filepath.Join(a.cfg.DecryptedDir, a.timestamp()+"."+ext)
	if err := writeImage(out, payload.Image, ext); err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{"path": out, "key_id": keys.ID}).Info("decrypted image")
	return &Response{Filepath: out, KeyID: keys.ID}, nil
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// writeImage encodes img in the format named by ext. Unknown extensions
// are written as PNG.
func writeImage(path string, img image.Image, ext string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	switch strings.ToLower(ext) {
	case "jpg", "jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case "gif":
		err = gif.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return f.Close()
}

func respond(w io.Writer, resp *Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

func respondErr(w io.Writer, err error) error {
	_ = respond(w, &Response{Success: false, Message: err.Error()})
	return err
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
