package rijndael

import "fmt"

// PaddingScheme extends plaintext to a whole number of blocks and undoes it.
type PaddingScheme interface {
	Pad(data []byte, blockSize int) []byte
	Unpad(data []byte) ([]byte, error)
}

// ZeroPadding appends blockSize - len(data)%blockSize zero bytes, so a
// block-aligned input gains a full block of zeros. Unpad strips every
// trailing zero byte, including any that belonged to the plaintext.
type ZeroPadding struct{}

// Pad implements PaddingScheme.
func (ZeroPadding) Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	return out
}

// Unpad implements PaddingScheme. It never fails.
func (ZeroPadding) Unpad(data []byte) ([]byte, error) {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	return data[:end], nil
}

// PKCS7Padding appends n bytes of value n, 1 <= n <= blockSize.
type PKCS7Padding struct{}

// Pad implements PaddingScheme.
func (PKCS7Padding) Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad implements PaddingScheme.
func (PKCS7Padding) Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidPadding)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > BlockSize || n > len(data) {
		return nil, fmt.Errorf("%w: pad length %d", ErrInvalidPadding, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrInvalidPadding)
		}
	}
	return data[:len(data)-n], nil
}
