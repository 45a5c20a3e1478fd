package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenEntropyBytes is the number of random bytes behind each session token.
const tokenEntropyBytes = 32

// GenerateToken returns a URL-safe opaque session token with 32 bytes of
// entropy. It fails only if the entropy source does.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
