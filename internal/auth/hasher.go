package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the plaintext.
// The transform is deterministic so a supplied password can be verified by
// recomputing the digest and comparing it to the stored one. Stored digests
// stay verifiable across releases as long as this contract holds.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
