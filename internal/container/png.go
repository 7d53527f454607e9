package container

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// WritePNG writes img as an 8-bit grayscale PNG.
func WritePNG(w io.Writer, img *Image) error {
	if _, err := img.Bytes(); err != nil {
		return err
	}
	gray := &image.Gray{
		Pix:    img.Pix,
		Stride: img.Width,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	if err := png.Encode(w, gray); err != nil {
		return fmt.Errorf("failed to encode container: %w", err)
	}
	return nil
}

// ReadPNG decodes a grayscale PNG container.
func ReadPNG(r io.Reader) (*Image, error) {
	decoded, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode container: %w", err)
	}
	gray, ok := decoded.(*image.Gray)
	if !ok {
		return nil, fmt.Errorf("%w: got %T, want *image.Gray", ErrUnsupportedImage, decoded)
	}

	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := gray.PixOffset(b.Min.X, y)
		pix = append(pix, gray.Pix[off:off+w]...)
	}
	return &Image{Width: w, Height: h, Pix: pix}, nil
}

// Save encodes data and writes it to path as a PNG.
func Save(path string, data []byte) (*Image, error) {
	img, err := Encode(data)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create container file: %w", err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close container file: %w", err)
	}
	return img, nil
}

// Load reads the buffer stored in the PNG at path.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open container file: %w", err)
	}
	defer f.Close()

	img, err := ReadPNG(f)
	if err != nil {
		return nil, err
	}
	return img.Bytes()
}
