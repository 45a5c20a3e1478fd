package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateToken_EntropyWidth(t *testing.T) {
	token, err := GenerateToken()
	assert.NoError(t, err)
	assert.Len(t, token, base64.RawURLEncoding.EncodedLen(tokenEntropyBytes))

	raw, err := base64.RawURLEncoding.DecodeString(token)
	assert.NoError(t, err)
	assert.Len(t, raw, tokenEntropyBytes)
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		token, err := GenerateToken()
		assert.NoError(t, err)
		if _, ok := seen[token]; ok {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[token] = struct{}{}
	}
}
