package chaoskey

import (
	"fmt"
	"math"
)

const (
	// SampleLimit bounds samples to the open interval (-SampleLimit, SampleLimit).
	SampleLimit = 8

	// QuantizedSize is the encoded size of one sample in bytes.
	QuantizedSize = 2

	fractionBits  = 12
	fractionScale = 1 << fractionBits
)

// Quantize encodes v as 4 integer bits and 12 fraction bits after shifting it
// by +8. Values outside (-8, 8) are rejected, never clamped.
func Quantize(v float64) ([QuantizedSize]byte, error) {
	var out [QuantizedSize]byte
	if math.IsNaN(v) || v <= -SampleLimit || v >= SampleLimit {
		return out, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}

	v += SampleLimit
	n := math.Floor(v)
	s := math.Floor((v - n) * fractionScale)
	// v just below 8 can round to 16.0 once shifted.
	if n > 15 {
		n, s = 15, fractionScale-1
	}

	in, is := uint16(n), uint16(s)
	out[0] = byte(in<<4 | is>>8)
	out[1] = byte(is & 0xff)
	return out, nil
}

// Dequantize reconstructs the approximate sample encoded by Quantize. The
// result is within 2^-12 below the original value.
func Dequantize(b [QuantizedSize]byte) float64 {
	n := float64(b[0] >> 4)
	s := float64(uint16(b[0]&0x0f)<<8 | uint16(b[1]))
	return n + s/fractionScale - SampleLimit
}
