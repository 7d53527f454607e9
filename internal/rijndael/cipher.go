package rijndael

import "fmt"

// BlockMode selects how blocks of a message are linked.
type BlockMode int

const (
	// ModeIndependent encrypts each block on its own (ECB structure).
	ModeIndependent BlockMode = iota
	// ModeChained XORs each plaintext block with the previous ciphertext
	// block, starting from a caller-supplied initialization vector (CBC).
	ModeChained
)

// String returns the configuration name of the mode.
func (m BlockMode) String() string {
	switch m {
	case ModeIndependent:
		return "independent"
	case ModeChained:
		return "chained"
	default:
		return fmt.Sprintf("BlockMode(%d)", int(m))
	}
}

// NeedsIV reports whether the mode consumes an initialization vector.
func (m BlockMode) NeedsIV() bool {
	return m == ModeChained
}

// Cipher encrypts whole messages under a fixed round-key list.
type Cipher struct {
	keys    []State
	mode    BlockMode
	padding PaddingScheme
}

// NewCipher validates roundKeys and returns a message cipher. A nil padding
// selects ZeroPadding.
func NewCipher(roundKeys [][]byte, mode BlockMode, padding PaddingScheme) (*Cipher, error) {
	if mode != ModeIndependent && mode != ModeChained {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
	}
	keys, err := keyGrids(roundKeys)
	if err != nil {
		return nil, err
	}
	if padding == nil {
		padding = ZeroPadding{}
	}
	return &Cipher{keys: keys, mode: mode, padding: padding}, nil
}

// Mode returns the configured block mode.
func (c *Cipher) Mode() BlockMode { return c.mode }

// Rounds returns the number of transformation rounds per block.
func (c *Cipher) Rounds() int { return len(c.keys) - 1 }

func (c *Cipher) checkIV(iv []byte) error {
	if c.mode.NeedsIV() && len(iv) != BlockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIV, len(iv), BlockSize)
	}
	return nil
}

// Encrypt pads plaintext and encrypts it block by block. iv is ignored in
// ModeIndependent.
func (c *Cipher) Encrypt(plaintext, iv []byte) ([]byte, error) {
	if err := c.checkIV(iv); err != nil {
		return nil, err
	}
	padded := c.padding.Pad(plaintext, BlockSize)
	out := make([]byte, len(padded))

	var prev []byte
	if c.mode == ModeChained {
		prev = iv
	}
	for off := 0; off < len(padded); off += BlockSize {
		block := padded[off : off+BlockSize]
		if prev != nil {
			for i := range block {
				block[i] ^= prev[i]
			}
		}
		s, _ := BlockToState(block)
		encryptState(&s, c.keys)
		copy(out[off:], StateToBlock(s))
		if prev != nil {
			prev = out[off : off+BlockSize]
		}
	}
	return out, nil
}

// Decrypt reverses Encrypt and removes the padding.
func (c *Cipher) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	if err := c.checkIV(iv); err != nil {
		return nil, err
	}
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, not a multiple of %d", ErrMalformedState, len(ciphertext), BlockSize)
	}
	out := make([]byte, len(ciphertext))

	var prev []byte
	if c.mode == ModeChained {
		prev = iv
	}
	for off := 0; off < len(ciphertext); off += BlockSize {
		block := ciphertext[off : off+BlockSize]
		s, _ := BlockToState(block)
		decryptState(&s, c.keys)
		plain := StateToBlock(s)
		if prev != nil {
			for i := range plain {
				plain[i] ^= prev[i]
			}
			prev = block
		}
		copy(out[off:], plain)
	}
	return c.padding.Unpad(out)
}

// Encrypt encrypts plaintext in ModeIndependent with ZeroPadding.
func Encrypt(plaintext []byte, roundKeys [][]byte) ([]byte, error) {
	c, err := NewCipher(roundKeys, ModeIndependent, ZeroPadding{})
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext, nil)
}

// Decrypt reverses Encrypt. Trailing zero bytes of the original plaintext
// are lost.
func Decrypt(ciphertext []byte, roundKeys [][]byte) ([]byte, error) {
	c, err := NewCipher(roundKeys, ModeIndependent, ZeroPadding{})
	if err != nil {
		return nil, err
	}
	return c.Decrypt(ciphertext, nil)
}
