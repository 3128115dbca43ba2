package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "campusboard-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken("admin-1", "admin@campusboard.edu")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "admin@campusboard.edu", claims.Email)
	assert.Equal(t, "campusboard-test", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateToken("admin-1", "admin@campusboard.edu")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse token")
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, _, err := svc.GenerateToken("admin-1", "admin@campusboard.edu")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := testJWTService(time.Hour).ValidateAndExtractClaims("not.a.token")
	assert.Error(t, err)

	_, err = testJWTService(time.Hour).ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// a header without the scheme prefix is passed through as-is
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
