package crypto

const (
	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESBlockSize is the AES block size, which is also the CBC IV size.
	AESBlockSize = 16
	// IVSize is the size of the CBC initialization vector in bytes.
	IVSize = AESBlockSize
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "AES-256-CBC:zero-padding:iv-prefix"
