package cryptoutil

import (
	"crypto/rand"
	"fmt"
)

// GenerateRandomBytes returns length bytes drawn from the operating
// system's cryptographically secure random source. It panics-free;
// on a read failure it returns ErrRandSourceFailed instead, since the
// caller has no way to retry a partial read meaningfully other than
// calling again.
func GenerateRandomBytes(length int) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandSourceFailed, err)
	}
	return buf, nil
}
