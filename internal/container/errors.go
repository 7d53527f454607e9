package container

import "errors"

var (
	// ErrEmptyBuffer is returned when asked to encode zero bytes.
	ErrEmptyBuffer = errors.New("cannot encode an empty buffer")

	// ErrContainerShape is returned when the pixel count does not equal
	// width*height or a dimension is not positive.
	ErrContainerShape = errors.New("container shape mismatch")

	// ErrUnsupportedImage is returned when a decoded file is not a
	// single-channel 8-bit image.
	ErrUnsupportedImage = errors.New("unsupported container image")
)
