package cryptoutil

import "errors"

// Sentinel errors returned by GenerateRandomBytes / DeriveKeyPBKDF2
// when the underlying primitive cannot satisfy the request; these are
// unrecoverable by the caller except by retry. Encrypt/decrypt
// failures are reported by a false ok return instead, never an error.
var (
	// ErrRandSourceFailed is returned when the system CSPRNG cannot
	// produce the requested number of bytes.
	ErrRandSourceFailed = errors.New("cryptoutil: random source failed")

	// ErrKeyDerivationFailed is returned when PBKDF2 cannot produce a
	// derived key of the requested length.
	ErrKeyDerivationFailed = errors.New("cryptoutil: key derivation failed")
)
