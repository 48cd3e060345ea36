package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseUserIDFromClaim(t *testing.T) {
	token := sign(t, jwt.MapClaims{"user_id": 42})

	id, err := ParseUserID(token)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestParseUserIDFromSubject(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "9"})

	id, err := ParseUserID(token)
	require.NoError(t, err)
	assert.Equal(t, 9, id)
}

func TestParseUserIDMissingClaim(t *testing.T) {
	token := sign(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	_, err := ParseUserID(token)
	require.Error(t, err)
}

func TestParseUserIDOpaqueToken(t *testing.T) {
	_, err := ParseUserID("opaque-token")
	require.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	expired := sign(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	assert.True(t, TokenExpired(expired))

	valid := sign(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	assert.False(t, TokenExpired(valid))

	// Токен без exp и непрозрачный токен считаются действующими
	assert.False(t, TokenExpired(sign(t, jwt.MapClaims{"user_id": 1})))
	assert.False(t, TokenExpired("opaque-token"))
}
