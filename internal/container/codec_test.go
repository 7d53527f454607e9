package container

import (
	"bytes"
	"errors"
	"testing"
)

func TestDimensions(t *testing.T) {
	tests := []struct {
		n          int
		wantWidth  int
		wantHeight int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{7, 7, 1},
		{12, 4, 3},
		{16, 4, 4},
		{32, 8, 4},
		{48, 8, 6},
		{97, 97, 1},
		{1024, 32, 32},
		{1040, 40, 26},
	}

	for _, tt := range tests {
		w, h, err := Dimensions(tt.n)
		if err != nil {
			t.Fatalf("Dimensions(%d) error = %v", tt.n, err)
		}
		if w != tt.wantWidth || h != tt.wantHeight {
			t.Errorf("Dimensions(%d) = %dx%d, want %dx%d", tt.n, w, h, tt.wantWidth, tt.wantHeight)
		}
	}
}

func TestDimensions_AreExact(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		w, h, err := Dimensions(n)
		if err != nil {
			t.Fatalf("Dimensions(%d) error = %v", n, err)
		}
		if w*h != n {
			t.Fatalf("Dimensions(%d) = %dx%d, product %d", n, w, h, w*h)
		}
		if h > w {
			t.Fatalf("Dimensions(%d) height %d exceeds width %d", n, h, w)
		}
	}
}

func TestDimensions_Empty(t *testing.T) {
	if _, _, err := Dimensions(0); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("expected ErrEmptyBuffer, got %v", err)
	}
	if _, err := Encode(nil); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("expected ErrEmptyBuffer, got %v", err)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"single byte", []byte{0x7f}},
		{"prime length", bytes.Repeat([]byte{1, 2, 3}, 11)[:31]},
		{"iv plus two blocks", bytes.Repeat([]byte{0xaa, 0x00}, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Encode(tt.data)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := Decode(img.Width, img.Height, img.Pix)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("Decode() = %x, want %x", got, tt.data)
			}
		})
	}
}

func TestDecode_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		pixels        int
	}{
		{"too few pixels", 4, 4, 15},
		{"too many pixels", 4, 4, 17},
		{"zero width", 0, 4, 0},
		{"negative height", 4, -1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.width, tt.height, make([]byte, tt.pixels))
			if !errors.Is(err, ErrContainerShape) {
				t.Errorf("expected ErrContainerShape, got %v", err)
			}
		})
	}
}
