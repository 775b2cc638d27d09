package cryptoutil

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// MinRecommendedIterations is the advised floor for PBKDF2-HMAC-SHA256
// iteration counts; it is not enforced here, only documented, since a
// caller may have its own compliance-driven minimum.
const MinRecommendedIterations = 100_000

// DeriveKeyPBKDF2 runs PBKDF2-HMAC-SHA256 over password and salt for
// iterations rounds, returning a derived key of exactly keyLength
// bytes. keyLength must be positive.
func DeriveKeyPBKDF2(password string, salt []byte, iterations, keyLength int) ([]byte, error) {
	if keyLength <= 0 {
		return nil, fmt.Errorf("%w: key length must be positive", ErrKeyDerivationFailed)
	}
	return pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New), nil
}
