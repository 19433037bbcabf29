package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "learnhub-test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(42, "ada@example.com", "instructor")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)
	assert.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.PrincipalID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "instructor", claims.Role)
	assert.Equal(t, "learnhub-test", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	access, _, _, _, err := svc.GenerateTokenPair(1, "u@example.com", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	access, _, _, _, err := svc.GenerateTokenPair(1, "u@example.com", "user")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(access)
	require.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A bare token without the scheme is accepted as-is.
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokensAreOpaqueAndUnique(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	_, first, _, _, err := svc.GenerateTokenPair(1, "u@example.com", "user")
	require.NoError(t, err)
	_, second, _, _, err := svc.GenerateTokenPair(1, "u@example.com", "user")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
