// Package chaoskey turns chaotic floating-point samples into key material.
//
// Every sample must lie in the open interval (-8, 8). [Quantize] shifts it to
// (0, 16) and emits 16 bits: a 4-bit integer part followed by a 12-bit
// fraction. Precision below 2^-12 is discarded.
//
// Two derivations share one resampling rule: with N samples per sequence
// and k draws wanted, step = N/k and the samples at step-1, 2*step-1, ...,
// k*step-1 are quantized. Draws are concatenated in the order x1, y1, x2, y2.
//
//   - [DeriveMasterKey] draws 4 samples per sequence for a 32-byte key.
//   - [DeriveRoundKeys] draws 2*rounds samples per sequence and slices the
//     16*rounds bytes into independent 16-byte round keys. There is no key
//     schedule.
//
// Key bytes should not be logged. [Fingerprint] gives a short identifier
// that can be.
package chaoskey
