// Package rijndael implements a Rijndael-style block cipher driven by an
// explicit list of round keys.
//
// # Round Keys
//
// There is no key schedule. The caller supplies N >= 2 independent 16-byte
// round keys (see chaoskey.DeriveRoundKeys) and the cipher performs N-1
// transformation rounds: N-2 full rounds plus one final round without
// mixColumns. Ten round keys therefore give nine rounds, one fewer than
// AES-128 with its eleven expanded round keys. The round count is part of the
// ciphertext format and must not be adjusted.
//
// # State Layout
//
// A 16-byte block maps row-major onto the 4x4 state: block[4*i+j] is
// state[i][j]. shiftRows rotates row i left by i positions and mixColumns
// combines the four bytes of each row, so rows play the part that columns
// play in FIPS-197.
//
// # Known Weaknesses
//
// This is a demonstration construction, not a vetted cipher.
//
//   - [ModeIndependent] encrypts every block on its own with the same round
//     keys. Equal plaintext blocks produce equal ciphertext blocks.
//   - [ZeroPadding] strips every trailing zero byte on decrypt, so plaintexts
//     that end in 0x00 lose those bytes. Use [PKCS7Padding] when that matters.
//
// Both are kept because changing them changes the on-disk format.
package rijndael
