// Package container stores an opaque byte buffer as a single-channel 8-bit
// image and reads it back.
//
// The rectangle is chosen so that no padding is needed: the height is the
// largest divisor of the buffer length that does not exceed its square root.
// Pixels are the buffer bytes in row-major order.
package container
