// Package crypto provides the library-backed cipher variant and key
// stretching helpers.
//
// # Algorithm Suite
//
//   - AES-256-CBC (crypto/aes): encrypts payloads under a 32-byte master key
//     derived from chaotic samples. Sealed output is IV || ciphertext.
//
//   - HKDF-SHA-512 (RFC 5869): expands a seed into an arbitrary-length
//     deterministic byte stream, used to draw pendulum parameters.
//
// # Padding
//
// Plaintext is padded with a rijndael.PaddingScheme. The default zero
// padding appends 1 to 16 zero bytes and strips every trailing zero on
// decrypt, so plaintext ending in 0x00 does not survive a round trip.
//
// # Security Notes
//
// CBC IVs MUST be unpredictable and unique for each encryption with the same
// key. [Seal] draws a fresh IV from crypto/rand on every call. There is no
// authentication tag: a modified container decrypts to garbage rather than
// failing.
package crypto
