package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-service/internal/domain"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken("user-123")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := NewJWTService("test-secret")
	svc.ttl = -time.Minute

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyTokenMalformed(t *testing.T) {
	svc := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyToken(tt.token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}
