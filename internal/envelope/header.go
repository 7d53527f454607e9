package envelope

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/vihar-202001110/CryptographyProject/internal/container"
)

const (
	sizeFieldLen = 4
	// ModeFieldLen is the width of the zero-padded mode tag.
	ModeFieldLen = 8
	// ExtensionFieldLen is the width of the zero-padded extension tag.
	ExtensionFieldLen = 6

	maxDimension = 0xFFFF
)

// Mode names a pixel layout.
type Mode string

const (
	ModeL    Mode = "L"
	ModeLA   Mode = "LA"
	ModeRGB  Mode = "RGB"
	ModeRGBA Mode = "RGBA"
)

// Channels returns the bytes per pixel, or 0 for an unknown mode.
func (m Mode) Channels() int {
	switch m {
	case ModeL:
		return 1
	case ModeLA:
		return 2
	case ModeRGB:
		return 3
	case ModeRGBA:
		return 4
	default:
		return 0
	}
}

// Header describes the pixels that follow it in an image payload.
type Header struct {
	Height    int
	Width     int
	Mode      Mode
	Extension string
}

// Size returns the encoded header length.
func (h Header) Size(withExt bool) int {
	if withExt {
		return sizeFieldLen + ModeFieldLen + ExtensionFieldLen
	}
	return sizeFieldLen + ModeFieldLen
}

// PixelLen is the number of pixel bytes the header promises.
func (h Header) PixelLen() int {
	return h.Height * h.Width * h.Mode.Channels()
}

// Pack prepends the encoded header to pix.
func Pack(h Header, pix []byte, withExt bool) ([]byte, error) {
	if h.Height <= 0 || h.Width <= 0 || h.Height > maxDimension || h.Width > maxDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedHeader, h.Width, h.Height)
	}
	if h.Mode.Channels() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, h.Mode)
	}
	if withExt && len(h.Extension) > ExtensionFieldLen {
		return nil, fmt.Errorf("%w: extension %q longer than %d bytes", ErrMalformedHeader, h.Extension, ExtensionFieldLen)
	}
	if len(pix) != h.PixelLen() {
		return nil, fmt.Errorf("%w: got %d pixel bytes, want %d", container.ErrContainerShape, len(pix), h.PixelLen())
	}

	out := make([]byte, h.Size(withExt), h.Size(withExt)+len(pix))
	out[0] = byte(h.Height / 256)
	out[1] = byte(h.Height % 256)
	out[2] = byte(h.Width / 256)
	out[3] = byte(h.Width % 256)
	copy(out[sizeFieldLen:], h.Mode)
	if withExt {
		copy(out[sizeFieldLen+ModeFieldLen:], h.Extension)
	}
	return append(out, pix...), nil
}

// Unpack parses a header and returns it with the pixel bytes that follow.
func Unpack(data []byte, withExt bool) (Header, []byte, error) {
	var h Header
	n := h.Size(withExt)
	if len(data) < n {
		return Header{}, nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrMalformedHeader, len(data), n)
	}

	h.Height = int(data[0])*256 + int(data[1])
	h.Width = int(data[2])*256 + int(data[3])
	h.Mode = Mode(trimZeros(data[sizeFieldLen : sizeFieldLen+ModeFieldLen]))
	if withExt {
		h.Extension = trimZeros(data[sizeFieldLen+ModeFieldLen : n])
	}

	if h.Mode.Channels() == 0 {
		return Header{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, h.Mode)
	}
	pix := data[n:]
	if h.Height == 0 || h.Width == 0 || len(pix) != h.PixelLen() {
		return Header{}, nil, fmt.Errorf("%w: %dx%d %s needs %d pixel bytes, got %d",
			container.ErrContainerShape, h.Width, h.Height, h.Mode, h.PixelLen(), len(pix))
	}
	return h, pix, nil
}

// Restore re-extends an image payload whose trailing zero bytes were
// removed by zero padding. The header says how long the payload must be;
// data that is already long enough, or whose header is unreadable, is
// returned unchanged.
func Restore(data []byte, withExt bool) []byte {
	if len(data) <= sizeFieldLen {
		return data
	}
	var h Header
	n := h.Size(withExt)
	head := make([]byte, n)
	copy(head, data)

	h.Height = int(head[0])*256 + int(head[1])
	h.Width = int(head[2])*256 + int(head[3])
	h.Mode = Mode(trimZeros(head[sizeFieldLen : sizeFieldLen+ModeFieldLen]))
	if h.Mode.Channels() == 0 {
		return data
	}
	want := n + h.PixelLen()
	if len(data) >= want {
		return data
	}
	out := make([]byte, want)
	copy(out, data)
	return out
}

func trimZeros(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}

// ModeOf picks the payload mode for img: L for grayscale, RGB for opaque
// images, RGBA otherwise.
func ModeOf(img image.Image) Mode {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeL
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return ModeRGB
	}
	return ModeRGBA
}

// ImageToBytes serializes img as header (with extension) followed by its
// pixels.
func ImageToBytes(img image.Image, ext string) ([]byte, error) {
	mode := ModeOf(img)
	b := img.Bounds()
	h := Header{Height: b.Dy(), Width: b.Dx(), Mode: mode, Extension: strings.TrimPrefix(ext, ".")}

	pix := make([]byte, 0, h.PixelLen())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if mode == ModeL {
				pix = append(pix, color.GrayModel.Convert(c).(color.Gray).Y)
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			pix = append(pix, n.R, n.G, n.B)
			if mode == ModeRGBA {
				pix = append(pix, n.A)
			}
		}
	}
	return Pack(h, pix, true)
}

// BytesToImage reverses ImageToBytes and returns the recorded extension.
func BytesToImage(data []byte) (image.Image, string, error) {
	h, pix, err := Unpack(data, true)
	if err != nil {
		return nil, "", err
	}
	return Render(h, pix), h.Extension, nil
}

// Render builds an image from a parsed header and matching pixels. L maps
// to *image.Gray; the other modes map to *image.NRGBA.
func Render(h Header, pix []byte) image.Image {
	rect := image.Rect(0, 0, h.Width, h.Height)
	if h.Mode == ModeL {
		img := image.NewGray(rect)
		copy(img.Pix, pix)
		return img
	}

	img := image.NewNRGBA(rect)
	ch := h.Mode.Channels()
	for i, j := 0, 0; i+ch <= len(pix); i, j = i+ch, j+4 {
		switch h.Mode {
		case ModeLA:
			img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = pix[i], pix[i], pix[i], pix[i+1]
		case ModeRGB:
			img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = pix[i], pix[i+1], pix[i+2], 0xFF
		default:
			copy(img.Pix[j:j+4], pix[i:i+4])
		}
	}
	return img
}
