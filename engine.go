package chaoscrypt

import (
	"bytes"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/vihar-202001110/CryptographyProject/internal/chaoskey"
	"github.com/vihar-202001110/CryptographyProject/internal/container"
	"github.com/vihar-202001110/CryptographyProject/internal/crypto"
	"github.com/vihar-202001110/CryptographyProject/internal/envelope"
	"github.com/vihar-202001110/CryptographyProject/internal/pendulum"
	"github.com/vihar-202001110/CryptographyProject/internal/rijndael"
)

// Parameters are the pendulum initial conditions a key is derived from.
type Parameters = pendulum.Parameters

// PayloadKind identifies what a container carries.
type PayloadKind = envelope.Kind

// Payload kind constants.
const (
	KindText  = envelope.KindText
	KindImage = envelope.KindImage
)

// Keys is the key material for one variant. It must not be modified after
// derivation.
type Keys struct {
	Variant   Variant
	MasterKey []byte   // VariantAESCBC
	RoundKeys [][]byte // VariantRijndael
	ID        string   // fingerprint, safe to log
}

// Payload is the decrypted content of a container.
type Payload struct {
	Kind      PayloadKind
	Text      []byte
	Image     image.Image
	Extension string
}

// Engine derives keys from pendulum parameters and moves payloads in and
// out of container images. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	cfg     engineConfig
	padding rijndael.PaddingScheme
	log     *logrus.Logger
}

// New creates an Engine.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := ParseVariant(string(cfg.variant)); err != nil {
		return nil, err
	}
	if cfg.rounds < rijndael.MinRoundKeys {
		return nil, fmt.Errorf("%w: rounds %d, want at least %d", ErrInvalidOption, cfg.rounds, rijndael.MinRoundKeys)
	}
	if cfg.mode != BlockIndependent && cfg.mode != BlockChained {
		return nil, fmt.Errorf("%w: block mode %v", ErrInvalidOption, cfg.mode)
	}
	padding, err := cfg.padding.scheme()
	if err != nil {
		return nil, err
	}
	if cfg.source == nil {
		return nil, fmt.Errorf("%w: nil sample source", ErrInvalidOption)
	}
	if cfg.logger == nil {
		cfg.logger = logrus.New()
	}

	return &Engine{cfg: cfg, padding: padding, log: cfg.logger}, nil
}

// Variant returns the configured variant.
func (e *Engine) Variant() Variant { return e.cfg.variant }

// requiredSamples is the shortest trajectory the variant can derive from.
func (e *Engine) requiredSamples() int {
	if e.cfg.variant == VariantRijndael {
		return 2 * e.cfg.rounds
	}
	return 4
}

// GenerateParameters draws a fresh parameter set from a random seed. The
// sample count is raised to what the configured variant needs.
func (e *Engine) GenerateParameters() (Parameters, error) {
	seed, err := pendulum.NewSeed()
	if err != nil {
		return Parameters{}, stageErr(OpDerive, StageParams, err)
	}
	p, err := pendulum.GenerateParameters(seed)
	if err != nil {
		return Parameters{}, stageErr(OpDerive, StageParams, err)
	}
	if n := e.requiredSamples(); p.Samples < n {
		p.Samples = n
	}
	return p, nil
}

// DeriveKeys runs the sample source and derives key material for the
// configured variant.
func (e *Engine) DeriveKeys(p Parameters) (*Keys, error) {
	tr, err := e.cfg.source.Sample(p)
	if err != nil {
		return nil, stageErr(OpDerive, StageParams, err)
	}
	return e.KeysFromTrajectory(tr)
}

// KeysFromTrajectory derives key material from precomputed samples.
func (e *Engine) KeysFromTrajectory(tr *pendulum.Trajectory) (*Keys, error) {
	keys := &Keys{Variant: e.cfg.variant}

	// Sequences go in positionally as x1, y1, x2, y2; key files in the wild
	// depend on this order.
	switch e.cfg.variant {
	case VariantAESCBC:
		mk, err := chaoskey.DeriveMasterKey(tr.X1, tr.Y1, tr.X2, tr.Y2)
		if err != nil {
			return nil, stageErr(OpDerive, StageDerivation, err)
		}
		keys.MasterKey = mk
		keys.ID = chaoskey.Fingerprint(mk)
	case VariantRijndael:
		rks, err := chaoskey.DeriveRoundKeys(tr.X1, tr.Y1, tr.X2, tr.Y2, e.cfg.rounds)
		if err != nil {
			return nil, stageErr(OpDerive, StageDerivation, err)
		}
		keys.RoundKeys = rks
		keys.ID = chaoskey.Fingerprint(bytes.Join(rks, nil))
	}

	e.log.WithFields(logrus.Fields{
		"variant": e.cfg.variant,
		"samples": tr.Len(),
		"key_id":  keys.ID,
	}).Debug("derived key material")
	return keys, nil
}

func (e *Engine) checkKeys(op string, keys *Keys) error {
	if keys == nil || keys.Variant != e.cfg.variant {
		return stageErr(op, StageDerivation, ErrKeyMismatch)
	}
	return nil
}

// Encrypt encrypts raw bytes. VariantAESCBC and BlockChained output starts
// with a fresh random IV.
func (e *Engine) Encrypt(keys *Keys, plaintext []byte) ([]byte, error) {
	if err := e.checkKeys(OpEncrypt, keys); err != nil {
		return nil, err
	}

	var (
		out []byte
		err error
	)
	switch e.cfg.variant {
	case VariantAESCBC:
		out, err = crypto.Seal(keys.MasterKey, plaintext, e.padding)
	case VariantRijndael:
		out, err = e.rijndaelEncrypt(keys.RoundKeys, plaintext)
	}
	if err != nil {
		return nil, stageErr(OpEncrypt, StageCipher, err)
	}

	e.log.WithFields(logrus.Fields{
		"variant": e.cfg.variant,
		"bytes":   len(out),
		"key_id":  keys.ID,
	}).Debug("encrypted payload")
	return out, nil
}

func (e *Engine) rijndaelEncrypt(roundKeys [][]byte, plaintext []byte) ([]byte, error) {
	c, err := rijndael.NewCipher(roundKeys, e.cfg.mode, e.padding)
	if err != nil {
		return nil, err
	}
	if !e.cfg.mode.NeedsIV() {
		return c.Encrypt(plaintext, nil)
	}
	iv, err := crypto.NewIV()
	if err != nil {
		return nil, err
	}
	ct, err := c.Encrypt(plaintext, iv)
	if err != nil {
		return nil, err
	}
	return append(iv, ct...), nil
}

// Decrypt reverses Encrypt.
func (e *Engine) Decrypt(keys *Keys, ciphertext []byte) ([]byte, error) {
	if err := e.checkKeys(OpDecrypt, keys); err != nil {
		return nil, err
	}

	var (
		out []byte
		err error
	)
	switch e.cfg.variant {
	case VariantAESCBC:
		out, err = crypto.Open(keys.MasterKey, ciphertext, e.padding)
	case VariantRijndael:
		out, err = e.rijndaelDecrypt(keys.RoundKeys, ciphertext)
	}
	if err != nil {
		return nil, stageErr(OpDecrypt, StageCipher, err)
	}

	e.log.WithFields(logrus.Fields{
		"variant": e.cfg.variant,
		"bytes":   len(out),
		"key_id":  keys.ID,
	}).Debug("decrypted payload")
	return out, nil
}

func (e *Engine) rijndaelDecrypt(roundKeys [][]byte, ciphertext []byte) ([]byte, error) {
	c, err := rijndael.NewCipher(roundKeys, e.cfg.mode, e.padding)
	if err != nil {
		return nil, err
	}
	if !e.cfg.mode.NeedsIV() {
		return c.Decrypt(ciphertext, nil)
	}
	if len(ciphertext) < rijndael.BlockSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the IV", rijndael.ErrMalformedState, len(ciphertext))
	}
	return c.Decrypt(ciphertext[rijndael.BlockSize:], ciphertext[:rijndael.BlockSize])
}

// Seal wraps content in an envelope of the given kind and encrypts it.
func (e *Engine) Seal(keys *Keys, kind PayloadKind, content []byte) ([]byte, error) {
	wrapped, err := envelope.Wrap(kind, content, e.cfg.compress)
	if err != nil {
		return nil, stageErr(OpEncrypt, StageEnvelope, err)
	}
	return e.Encrypt(keys, wrapped)
}

// SealImage serializes img with its header and extension, then seals it.
func (e *Engine) SealImage(keys *Keys, img image.Image, ext string) ([]byte, error) {
	data, err := envelope.ImageToBytes(img, ext)
	if err != nil {
		return nil, stageErr(OpEncrypt, StageEnvelope, err)
	}
	return e.Seal(keys, KindImage, data)
}

// Open decrypts a sealed buffer and decodes its envelope.
func (e *Engine) Open(keys *Keys, sealed []byte) (*Payload, error) {
	plain, err := e.Decrypt(keys, sealed)
	if err != nil {
		return nil, err
	}
	if len(plain) == 0 && e.cfg.padding == PaddingZero {
		// An empty text envelope is a single zero byte, which zero padding
		// strips along with the pad.
		plain = []byte{byte(KindText)}
	}
	kind, content, err := envelope.Unwrap(plain)
	if err != nil {
		return nil, stageErr(OpDecrypt, StageEnvelope, err)
	}

	p := &Payload{Kind: kind}
	switch kind {
	case KindText:
		p.Text = content
	case KindImage:
		img, ext, err := envelope.BytesToImage(envelope.Restore(content, true))
		if err != nil {
			return nil, stageErr(OpDecrypt, StageEnvelope, err)
		}
		p.Image, p.Extension = img, ext
	}
	return p, nil
}

// SealFile seals content and writes it to path as a container PNG.
func (e *Engine) SealFile(keys *Keys, path string, kind PayloadKind, content []byte) (*container.Image, error) {
	sealed, err := e.Seal(keys, kind, content)
	if err != nil {
		return nil, err
	}
	return e.writeContainer(path, sealed)
}

// SealImageFile seals img and writes it to path as a container PNG.
func (e *Engine) SealImageFile(keys *Keys, path string, img image.Image, ext string) (*container.Image, error) {
	sealed, err := e.SealImage(keys, img, ext)
	if err != nil {
		return nil, err
	}
	return e.writeContainer(path, sealed)
}

func (e *Engine) writeContainer(path string, sealed []byte) (*container.Image, error) {
	img, err := container.Save(path, sealed)
	if err != nil {
		return nil, stageErr(OpEncrypt, StageContainer, err)
	}
	e.log.WithFields(logrus.Fields{
		"path":   path,
		"width":  img.Width,
		"height": img.Height,
	}).Debug("wrote container")
	return img, nil
}

// OpenFile reads the container PNG at path and opens it.
func (e *Engine) OpenFile(keys *Keys, path string) (*Payload, error) {
	sealed, err := container.Load(path)
	if err != nil {
		return nil, stageErr(OpDecrypt, StageContainer, err)
	}
	e.log.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(sealed),
	}).Debug("read container")
	return e.Open(keys, sealed)
}
