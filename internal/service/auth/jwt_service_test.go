package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpetrosyan/vocab-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:              "test-secret-key-thats-long-enough-for-hmac",
		TokenLifetimeMinutes:   60,
		RefreshLifetimeMinutes: 10080,
	}
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "too-short"

	_, err := NewJWTService(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()

	token, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()

	access, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(ctx, access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = svc.ValidateToken(ctx, refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)

	userID := uuid.New()
	ctx := context.Background()

	// Issue the token in the past, beyond lifetime plus clock skew.
	issuedAt := time.Now().Add(-2 * time.Hour)
	impl.timeFunc = func() time.Time { return issuedAt }
	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)

	impl.timeFunc = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-different-secret-key-also-long-enough!"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	ctx := context.Background()
	token, err := other.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptVerifier_HashAndCompare(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(4) // minimum cost keeps the test fast

	hash, err := v.Hash("correct horse battery staple")
	require.NoError(t, err)

	require.NoError(t, v.Compare(hash, "correct horse battery staple"))
	assert.Error(t, v.Compare(hash, "wrong password entirely"))
}

func TestBcryptVerifier_RejectsShortPassword(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(4)

	_, err := v.Hash("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
