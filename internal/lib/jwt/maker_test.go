package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", 7*time.Hour)

	token, err := maker.GenerateToken("user@example.com", "testuser")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "testuser", claims.Username)
	assert.WithinDuration(t, time.Now().Add(7*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestMaker_ParseToken_WrongSecret(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)
	other := NewJWTMaker("another-secret", time.Hour)

	token, err := maker.GenerateToken("user@example.com", "testuser")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestMaker_ParseToken_Expired(t *testing.T) {
	maker := NewJWTMaker("test-secret", -time.Minute)

	token, err := maker.GenerateToken("user@example.com", "testuser")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}

func TestMaker_ParseToken_Garbage(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)

	_, err := maker.ParseToken("not-a-jwt-token")
	assert.Error(t, err)
}
