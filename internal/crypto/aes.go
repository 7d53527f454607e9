package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/vihar-202001110/CryptographyProject/internal/rijndael"
)

// randReader is the random source used for IV generation.
// It defaults to crypto/rand but can be overridden for testing.
var randReader io.Reader = rand.Reader

// NewIV returns a fresh random IV. Every encryption under a key must use a
// new IV.
func NewIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(randReader, iv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return iv, nil
}

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return block, nil
}

// EncryptCBC pads plaintext and encrypts it with AES-256-CBC.
// A nil padding selects zero padding.
func EncryptCBC(key, iv, plaintext []byte, padding rijndael.PaddingScheme) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), IVSize)
	}
	if padding == nil {
		padding = rijndael.ZeroPadding{}
	}

	padded := padding.Pad(plaintext, AESBlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// DecryptCBC reverses EncryptCBC.
func DecryptCBC(key, iv, ciphertext []byte, padding rijndael.PaddingScheme) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), IVSize)
	}
	if len(ciphertext)%AESBlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrInvalidCiphertextSize, len(ciphertext), AESBlockSize)
	}
	if padding == nil {
		padding = rijndael.ZeroPadding{}
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return padding.Unpad(plaintext)
}

// Seal encrypts plaintext under a fresh IV.
// Returns: IV (16 bytes) || ciphertext
func Seal(key, plaintext []byte, padding rijndael.PaddingScheme) ([]byte, error) {
	iv, err := NewIV()
	if err != nil {
		return nil, err
	}
	ciphertext, err := EncryptCBC(key, iv, plaintext, padding)
	if err != nil {
		return nil, err
	}
	return append(iv, ciphertext...), nil
}

// Open decrypts the output of Seal.
func Open(key, sealed []byte, padding rijndael.PaddingScheme) ([]byte, error) {
	if len(sealed) < IVSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the IV", ErrInvalidCiphertextSize, len(sealed))
	}
	return DecryptCBC(key, sealed[:IVSize], sealed[IVSize:], padding)
}
