// Package services provides external service integrations and technical concerns like tokens
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestTokenService creates a token service for testing
func createTestTokenService() (TokenService, error) {
	return NewTokenService(
		15*time.Minute,
		"test-issuer",
		"test-audience",
		"test-secret-key-for-jwt-signing-32-chars",
	)
}

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name        string
		secretKey   string
		expectError bool
	}{
		{
			name:        "valid configuration",
			secretKey:   "test-secret-key-for-jwt-signing-32-chars",
			expectError: false,
		},
		{
			name:        "missing secret key",
			secretKey:   "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewTokenService(15*time.Minute, "test-issuer", "test-audience", tt.secretKey)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := createTestTokenService()
	require.NoError(t, err)

	token, err := svc.GenerateToken(42, "testuser")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.NotEmpty(t, claims.TokenID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
}

func TestValidateToken_Garbage(t *testing.T) {
	svc, err := createTestTokenService()
	require.NoError(t, err)

	claims, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongKey(t *testing.T) {
	svc, err := createTestTokenService()
	require.NoError(t, err)

	other, err := NewTokenService(15*time.Minute, "test-issuer", "test-audience", "a-completely-different-secret-key-value")
	require.NoError(t, err)

	token, err := other.GenerateToken(1, "someone")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewTokenService(-1*time.Minute, "test-issuer", "test-audience", "test-secret-key-for-jwt-signing-32-chars")
	require.NoError(t, err)

	token, err := svc.GenerateToken(7, "expired")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}
