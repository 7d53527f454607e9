package envelope

import "errors"

var (
	// ErrEmptyEnvelope is returned when there is no tag byte to read.
	ErrEmptyEnvelope = errors.New("empty envelope")

	// ErrUnknownKind is returned for a tag that names no payload kind.
	ErrUnknownKind = errors.New("unknown payload kind")

	// ErrMalformedHeader is returned when an image header is truncated or a
	// field does not fit its width.
	ErrMalformedHeader = errors.New("malformed image header")

	// ErrUnsupportedMode is returned for a pixel mode other than L, LA, RGB
	// or RGBA.
	ErrUnsupportedMode = errors.New("unsupported pixel mode")

	// ErrCompression is returned when compressing or decompressing fails.
	ErrCompression = errors.New("compression failed")
)
