package container

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestWriteReadPNG(t *testing.T) {
	data := make([]byte, 48)
	for i := range data {
		data[i] = byte(i * 5)
	}
	img, err := Encode(data)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	got, err := ReadPNG(&buf)
	if err != nil {
		t.Fatalf("ReadPNG() error = %v", err)
	}
	if got.Width != img.Width || got.Height != img.Height {
		t.Errorf("dimensions = %dx%d, want %dx%d", got.Width, got.Height, img.Width, img.Height)
	}
	if !bytes.Equal(got.Pix, data) {
		t.Errorf("pixels = %x, want %x", got.Pix, data)
	}
}

func TestReadPNG_RejectsColor(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadPNG(&buf); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("expected ErrUnsupportedImage, got %v", err)
	}
}

func TestReadPNG_Garbage(t *testing.T) {
	if _, err := ReadPNG(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Error("expected error for non-PNG input")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "container.png")
	data := []byte("0123456789abcdef0123456789abcdef")

	img, err := Save(path, data)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if img.Width*img.Height != len(data) {
		t.Errorf("saved %dx%d for %d bytes", img.Width, img.Height, len(data))
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Load() = %q, want %q", got, data)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
