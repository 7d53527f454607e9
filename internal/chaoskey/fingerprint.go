package chaoskey

import (
	"encoding/hex"

	"github.com/cloudflare/circl/xof"
)

// FingerprintSize is the length of a fingerprint in bytes.
const FingerprintSize = 8

const fingerprintContext = "chaoscrypt:key-id:v1"

// Fingerprint returns a hex SHAKE256 digest of the key parts, suitable for
// logs and status output.
func Fingerprint(parts ...[]byte) string {
	h := xof.SHAKE256.New()
	_, _ = h.Write([]byte(fingerprintContext))
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	sum := make([]byte, FingerprintSize)
	_, _ = h.Read(sum)
	return hex.EncodeToString(sum)
}
