package jwt

import (
	"testing"
	"time"

	"health-tracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	token, tokenID, err := service.GenerateAccessToken("user-1", "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestJWTService_TokenIDsAreUnique(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	_, first, err := service.GenerateAccessToken("user-1", "jane@example.com")
	require.NoError(t, err)
	_, second, err := service.GenerateAccessToken("user-1", "jane@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "right-secret", AccessExpiry: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "wrong-secret", AccessExpiry: time.Hour})

	token, _, err := issuer.GenerateAccessToken("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := service.GenerateAccessToken("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
