package envelope

import (
	"bytes"
	"fmt"

	"github.com/ulikunitz/xz/lzma"
)

// Kind identifies what an envelope carries.
type Kind byte

const (
	KindText  Kind = 0
	KindImage Kind = 1
)

const compressedFlag = 0x80

// streamTerminator follows compressed content so that stripping trailing
// zero bytes never shortens the stream itself.
const streamTerminator = 0xFF

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

func (k Kind) valid() bool {
	return k == KindText || k == KindImage
}

// Wrap prefixes content with its tag, compressing it first if asked.
func Wrap(kind Kind, content []byte, compress bool) ([]byte, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	tag := byte(kind)
	if compress {
		c, err := compressLzma(content)
		if err != nil {
			return nil, err
		}
		content = append(c, streamTerminator)
		tag |= compressedFlag
	}

	out := make([]byte, 1+len(content))
	out[0] = tag
	copy(out[1:], content)
	return out, nil
}

// Unwrap splits an envelope into its kind and decompressed content.
func Unwrap(data []byte) (Kind, []byte, error) {
	if len(data) == 0 {
		return 0, nil, ErrEmptyEnvelope
	}
	tag := data[0]
	kind := Kind(tag &^ compressedFlag)
	if !kind.valid() {
		return 0, nil, fmt.Errorf("%w: tag 0x%02x", ErrUnknownKind, tag)
	}

	content := data[1:]
	if tag&compressedFlag != 0 {
		if len(content) == 0 || content[len(content)-1] != streamTerminator {
			return 0, nil, fmt.Errorf("%w: missing stream terminator", ErrCompression)
		}
		c, err := decompressLzma(content[:len(content)-1])
		if err != nil {
			return 0, nil, err
		}
		return kind, c, nil
	}
	out := make([]byte, len(content))
	copy(out, content)
	return kind, out, nil
}

func compressLzma(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return buf.Bytes(), nil
}

func decompressLzma(data []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return buf.Bytes(), nil
}
