package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// NewKeyStream returns an HKDF-SHA-512 reader over secret, domain separated
// by info.
func NewKeyStream(secret, salt, info []byte) io.Reader {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}
	return hkdf.New(sha512.New, secret, salt, info)
}

// DeriveKey derives a key using HKDF-SHA-512.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	key := make([]byte, length)
	if _, err := io.ReadFull(NewKeyStream(secret, salt, info), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
