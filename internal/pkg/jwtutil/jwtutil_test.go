package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestGenerateAndParseRoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, time.Hour, 7, "alice1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice1", claims.Username)
	assert.Equal(t, "7", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken(secret, -time.Minute, 7, "alice1")
	require.NoError(t, err)

	_, err = ParseToken(secret, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, time.Hour, 7, "alice1")
	require.NoError(t, err)

	_, err = ParseToken("another-secret", token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseToken(secret, "not.a.token")
	assert.Error(t, err)
}
