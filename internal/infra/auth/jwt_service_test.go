package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, entity.RoleAdmin, accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role) // Refresh tokens don't carry the role
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenSignedWithWrongSecret(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID: userID,
		Role:   entity.RoleSuperAdmin,
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte("not-the-secret"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	jwtService := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID:           uuid.New(),
		Type:             "password-reset",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
	})
	signed, err := token.SignedString(jwtService.accessSecret)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrUnknownTokenType)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	jwtService.now = func() time.Time { return time.Now().Add(-time.Hour) }

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), entity.RoleClient)
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateToken(accessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_SameSecrets(t *testing.T) {
	_, err := NewJWTService(newTestConfig("same", "same"))
	assert.Error(t, err)
}

func TestJWTService_GetAccessTokenDuration(t *testing.T) {
	jwtService := newTestJWTService(t)

	assert.Equal(t, 15*time.Minute, jwtService.GetAccessTokenDuration())
}
