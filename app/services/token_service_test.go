package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/arkasoft/arka-portal/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, accessTTL time.Duration) services.TokenService {
	t.Helper()

	svc, err := services.NewTokenService(
		accessTTL, 24*time.Hour,
		"test-issuer", "test-audience",
		false, "", "", "test-secret-key",
		nil,
	)
	require.NoError(t, err)
	return svc
}

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := newTestTokenService(t, 1*time.Hour)

	accessToken, refreshToken, err := svc.GenerateTokens(42, "customer")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(context.Background(), accessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), accessClaims.AccountID)
	assert.Equal(t, "customer", accessClaims.Role)
	assert.Equal(t, "access", accessClaims.TokenType)
	assert.NotEmpty(t, accessClaims.TokenID)
	assert.True(t, accessClaims.ExpiresAt.After(accessClaims.IssuedAt))

	refreshClaims, err := svc.ValidateToken(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
	assert.NotEqual(t, accessClaims.TokenID, refreshClaims.TokenID)
}

func TestValidateTokenErrors(t *testing.T) {
	svc := newTestTokenService(t, 1*time.Hour)

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, services.ErrTokenInvalid)
	})

	t.Run("WrongSigningKey", func(t *testing.T) {
		other, err := services.NewTokenService(
			1*time.Hour, 24*time.Hour,
			"test-issuer", "test-audience",
			false, "", "", "a-different-secret",
			nil,
		)
		require.NoError(t, err)

		token, _, err := other.GenerateTokens(1, "customer")
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, services.ErrTokenInvalid)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		shortLived := newTestTokenService(t, -1*time.Minute)

		token, _, err := shortLived.GenerateTokens(1, "customer")
		require.NoError(t, err)

		_, err = shortLived.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, services.ErrTokenExpired)
	})
}

func TestRefreshToken(t *testing.T) {
	svc := newTestTokenService(t, 1*time.Hour)

	t.Run("IssuesFreshPair", func(t *testing.T) {
		_, refreshToken, err := svc.GenerateTokens(7, "staff")
		require.NoError(t, err)

		newAccess, newRefresh, err := svc.RefreshToken(context.Background(), refreshToken)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(context.Background(), newAccess)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.AccountID)
		assert.Equal(t, "staff", claims.Role)
		assert.Equal(t, "access", claims.TokenType)
		assert.NotEqual(t, refreshToken, newRefresh)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		accessToken, _, err := svc.GenerateTokens(7, "staff")
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(context.Background(), accessToken)
		assert.Error(t, err)
	})
}

func TestRevocationFailsOpenWithoutRedis(t *testing.T) {
	svc := newTestTokenService(t, 1*time.Hour)

	accessToken, _, err := svc.GenerateTokens(3, "customer")
	require.NoError(t, err)

	// With no revocation store configured, revoking is a no-op and the
	// token keeps validating
	require.NoError(t, svc.RevokeToken(context.Background(), accessToken))
	assert.False(t, svc.IsTokenRevoked(context.Background(), "any-token-id"))

	_, err = svc.ValidateToken(context.Background(), accessToken)
	assert.NoError(t, err)
}
