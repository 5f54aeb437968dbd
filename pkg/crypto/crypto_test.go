package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "rahasia123", hashed)

	assert.True(t, VerifyPassword(hashed, "rahasia123"))
	assert.False(t, VerifyPassword(hashed, "rahasia124"))
	assert.False(t, VerifyPassword(hashed, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("sama")
	require.NoError(t, err)
	second, err := HashPassword("sama")
	require.NoError(t, err)

	// Each hash carries its own salt
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword(first, "sama"))
	assert.True(t, VerifyPassword(second, "sama"))
}

func TestCookieKey(t *testing.T) {
	key := CookieKey("dev-secret")

	raw, err := base64.StdEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	// Deterministic for the same secret, distinct across secrets
	assert.Equal(t, key, CookieKey("dev-secret"))
	assert.NotEqual(t, key, CookieKey("other-secret"))
}
