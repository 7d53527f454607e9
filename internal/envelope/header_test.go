package envelope

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/vihar-202001110/CryptographyProject/internal/container"
)

func TestPack_Layout(t *testing.T) {
	h := Header{Height: 300, Width: 2, Mode: ModeL, Extension: "png"}
	pix := make([]byte, 600)

	got, err := Pack(h, pix, true)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	want := []byte{1, 44, 0, 2, 'L', 0, 0, 0, 0, 0, 0, 0, 'p', 'n', 'g', 0, 0, 0}
	if !bytes.Equal(got[:18], want) {
		t.Errorf("header = %v, want %v", got[:18], want)
	}
	if len(got) != 18+600 {
		t.Errorf("len = %d, want %d", len(got), 618)
	}

	noExt, err := Pack(h, pix, false)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(noExt[:12], want[:12]) || len(noExt) != 12+600 {
		t.Errorf("header without extension = %v", noExt[:12])
	}
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		withExt bool
	}{
		{"L with extension", Header{Height: 2, Width: 3, Mode: ModeL, Extension: "jpeg"}, true},
		{"LA", Header{Height: 1, Width: 1, Mode: ModeLA}, false},
		{"RGB", Header{Height: 3, Width: 2, Mode: ModeRGB}, false},
		{"RGBA full extension", Header{Height: 1, Width: 4, Mode: ModeRGBA, Extension: "abcdef"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := make([]byte, tt.header.PixelLen())
			for i := range pix {
				pix[i] = byte(i + 1)
			}

			data, err := Pack(tt.header, pix, tt.withExt)
			if err != nil {
				t.Fatalf("Pack() error = %v", err)
			}
			h, gotPix, err := Unpack(data, tt.withExt)
			if err != nil {
				t.Fatalf("Unpack() error = %v", err)
			}
			if h != tt.header {
				t.Errorf("header = %+v, want %+v", h, tt.header)
			}
			if !bytes.Equal(gotPix, pix) {
				t.Errorf("pixels = %v, want %v", gotPix, pix)
			}
		})
	}
}

func TestPack_Errors(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		pix     int
		wantErr error
	}{
		{"zero height", Header{Height: 0, Width: 1, Mode: ModeL}, 0, ErrMalformedHeader},
		{"too wide", Header{Height: 1, Width: 70000, Mode: ModeL}, 70000, ErrMalformedHeader},
		{"unknown mode", Header{Height: 1, Width: 1, Mode: "CMYK"}, 4, ErrUnsupportedMode},
		{"long extension", Header{Height: 1, Width: 1, Mode: ModeL, Extension: "toolong"}, 1, ErrMalformedHeader},
		{"pixel mismatch", Header{Height: 2, Width: 2, Mode: ModeRGB}, 11, container.ErrContainerShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pack(tt.header, make([]byte, tt.pix), true)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUnpack_Errors(t *testing.T) {
	valid, err := Pack(Header{Height: 2, Width: 2, Mode: ModeL}, []byte{1, 2, 3, 4}, true)
	if err != nil {
		t.Fatal(err)
	}

	badMode := append([]byte(nil), valid...)
	copy(badMode[4:12], "XYZ")

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"truncated header", valid[:10], ErrMalformedHeader},
		{"missing pixel", valid[:len(valid)-1], container.ErrContainerShape},
		{"extra pixel", append(append([]byte(nil), valid...), 9), container.ErrContainerShape},
		{"unknown mode", badMode, ErrUnsupportedMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Unpack(tt.data, true)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestImageToBytes_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(10 * i)
	}

	data, err := ImageToBytes(img, ".png")
	if err != nil {
		t.Fatalf("ImageToBytes() error = %v", err)
	}

	out, ext, err := BytesToImage(data)
	if err != nil {
		t.Fatalf("BytesToImage() error = %v", err)
	}
	if ext != "png" {
		t.Errorf("extension = %q, want png", ext)
	}
	gray, ok := out.(*image.Gray)
	if !ok {
		t.Fatalf("got %T, want *image.Gray", out)
	}
	if !bytes.Equal(gray.Pix, img.Pix) {
		t.Errorf("pixels = %v, want %v", gray.Pix, img.Pix)
	}
}

func TestImageToBytes_Color(t *testing.T) {
	tests := []struct {
		name     string
		alpha    uint8
		wantMode Mode
	}{
		{"opaque", 0xFF, ModeRGB},
		{"translucent", 0x80, ModeRGBA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 100), G: uint8(y * 100), B: 7, A: tt.alpha})
				}
			}

			if got := ModeOf(img); got != tt.wantMode {
				t.Fatalf("ModeOf() = %v, want %v", got, tt.wantMode)
			}

			data, err := ImageToBytes(img, "png")
			if err != nil {
				t.Fatalf("ImageToBytes() error = %v", err)
			}
			if got := len(data); got != 18+4*tt.wantMode.Channels() {
				t.Errorf("len = %d, want %d", got, 18+4*tt.wantMode.Channels())
			}

			out, _, err := BytesToImage(data)
			if err != nil {
				t.Fatalf("BytesToImage() error = %v", err)
			}
			nrgba, ok := out.(*image.NRGBA)
			if !ok {
				t.Fatalf("got %T, want *image.NRGBA", out)
			}
			if !bytes.Equal(nrgba.Pix, img.Pix) {
				t.Errorf("pixels = %v, want %v", nrgba.Pix, img.Pix)
			}
		})
	}
}

func TestRender_LA(t *testing.T) {
	out := Render(Header{Height: 1, Width: 2, Mode: ModeLA}, []byte{10, 200, 30, 40})
	nrgba := out.(*image.NRGBA)
	want := []byte{10, 10, 10, 200, 30, 30, 30, 40}
	if !bytes.Equal(nrgba.Pix, want) {
		t.Errorf("pixels = %v, want %v", nrgba.Pix, want)
	}
}

func TestRestore(t *testing.T) {
	black := image.NewGray(image.Rect(0, 0, 3, 3))
	data, err := ImageToBytes(black, "png")
	if err != nil {
		t.Fatal(err)
	}

	stripped := bytes.TrimRight(data, "\x00")
	if len(stripped) >= len(data) {
		t.Fatal("expected trailing zeros to be stripped")
	}

	restored := Restore(stripped, true)
	if !bytes.Equal(restored, data) {
		t.Errorf("Restore() = %v, want %v", restored, data)
	}

	out, ext, err := BytesToImage(restored)
	if err != nil {
		t.Fatalf("BytesToImage() error = %v", err)
	}
	if ext != "png" || out.Bounds().Dx() != 3 {
		t.Errorf("restored image %v ext %q", out.Bounds(), ext)
	}
}

func TestRestore_AllZeroExtension(t *testing.T) {
	data, err := ImageToBytes(image.NewGray(image.Rect(0, 0, 2, 1)), "")
	if err != nil {
		t.Fatal(err)
	}
	stripped := bytes.TrimRight(data, "\x00")
	if len(stripped) != 5 {
		t.Fatalf("stripped length = %d, want 5", len(stripped))
	}
	if got := Restore(stripped, true); !bytes.Equal(got, data) {
		t.Errorf("Restore() = %v, want %v", got, data)
	}
}

func TestRestore_Unchanged(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{0, 1, 0, 1}},
		{"unknown mode", []byte{0, 1, 0, 1, 'Q'}},
		{"complete", []byte{0, 1, 0, 1, 'L', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Restore(tt.data, true); !bytes.Equal(got, tt.data) {
				t.Errorf("Restore() = %v, want %v", got, tt.data)
			}
		})
	}
}
