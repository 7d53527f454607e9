package container

import (
	"fmt"
	"math"
)

// Image is a single-channel container. Pix holds Width*Height bytes,
// row-major.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Dimensions returns the near-square rectangle for n bytes.
func Dimensions(n int) (width, height int, err error) {
	if n <= 0 {
		return 0, 0, ErrEmptyBuffer
	}
	height = int(math.Sqrt(float64(n)))
	// Guard against float error at perfect squares.
	for (height+1)*(height+1) <= n {
		height++
	}
	for height*height > n {
		height--
	}
	for n%height != 0 {
		height--
	}
	return n / height, height, nil
}

// Encode lays data out as an image. The returned Pix aliases data.
func Encode(data []byte) (*Image, error) {
	w, h, err := Dimensions(len(data))
	if err != nil {
		return nil, err
	}
	return &Image{Width: w, Height: h, Pix: data}, nil
}

// Decode returns the buffer carried by pix after checking its shape.
func Decode(width, height int, pix []byte) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrContainerShape, width, height)
	}
	if width*height != len(pix) {
		return nil, fmt.Errorf("%w: got %d pixels, want %d", ErrContainerShape, len(pix), width*height)
	}
	out := make([]byte, len(pix))
	copy(out, pix)
	return out, nil
}

// Bytes returns the carried buffer. It is Decode on the image's own fields.
func (img *Image) Bytes() ([]byte, error) {
	return Decode(img.Width, img.Height, img.Pix)
}
