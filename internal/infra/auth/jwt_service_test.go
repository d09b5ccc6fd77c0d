package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  10 * time.Minute,
			RefreshTokenTTL: 48 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"CUSTOMER", "ADMIN"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), []string{"CUSTOMER"})
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	_, first, err := jwtService.GenerateTokens(userID, nil)
	require.NoError(t, err)
	_, second, err := jwtService.GenerateTokens(userID, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, jwtService.HashToken(first), jwtService.HashToken(second))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jwtSvc.now = func() time.Time { return issued }

	accessToken, err := jwtSvc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	jwtSvc.now = func() time.Time { return issued.Add(11 * time.Minute) }
	_, err = jwtSvc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "another_access_secret_key_for_testing"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, err := issuer.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""
	cfg.SecretKey.Refresh = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_Durations(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, jwtService.GetAccessTokenDuration())
	assert.Equal(t, 48*time.Hour, jwtService.GetRefreshTokenDuration())

	cfg := newTestConfig()
	cfg.Auth = nil
	defaults, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, defaults.GetAccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, defaults.GetRefreshTokenDuration())
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	// sha-256 of "abc"
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", jwtService.HashToken("abc"))
}
