package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("clave-de-prueba")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, "maria", "access", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Login)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestParseTokenRejectsWrongType(t *testing.T) {
	token, err := GenerateToken(secret, "maria", "refresh", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, "maria", "access", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("otra-clave"), "access", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(secret, "maria", "access", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken(secret, "access", "no-es-un-jwt")
	assert.Error(t, err)
}
