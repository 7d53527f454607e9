package chaoskey

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestQuantize_KnownValues(t *testing.T) {
	tests := []struct {
		in   float64
		want [2]byte
	}{
		{0, [2]byte{0x80, 0x00}},
		{-7.5, [2]byte{0x08, 0x00}},
		{3.25, [2]byte{0xb4, 0x00}},
		{7.9999, [2]byte{0xff, 0xff}},
		{-8 + 1.0/4096, [2]byte{0x00, 0x01}},
	}

	for _, tt := range tests {
		got, err := Quantize(tt.in)
		if err != nil {
			t.Fatalf("Quantize(%v) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Quantize(%v) = %x, want %x", tt.in, got, tt.want)
		}
	}
}

func TestQuantize_Reconstruction(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		v := r.Float64()*16 - 8
		if v <= -8 {
			continue
		}
		q, err := Quantize(v)
		if err != nil {
			t.Fatalf("Quantize(%v) error = %v", v, err)
		}
		if diff := math.Abs(Dequantize(q) - v); diff >= 1.0/4096 {
			t.Fatalf("Dequantize(Quantize(%v)) off by %v", v, diff)
		}
	}
}

func TestQuantize_OutOfRange(t *testing.T) {
	for _, v := range []float64{-8, 8, -8.5, 100, math.Inf(1), math.Inf(-1), math.NaN()} {
		if _, err := Quantize(v); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Quantize(%v) error = %v, want ErrOutOfRange", v, err)
		}
	}
}

func TestQuantize_JustBelowLimit(t *testing.T) {
	v := math.Nextafter(8, 0)
	q, err := Quantize(v)
	if err != nil {
		t.Fatalf("Quantize(%v) error = %v", v, err)
	}
	if q != [2]byte{0xff, 0xff} {
		t.Errorf("Quantize(%v) = %x, want ffff", v, q)
	}
}
