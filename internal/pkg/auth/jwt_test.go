package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karan/societyhub/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "societyhub.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	identity := models.Identity{
		SubjectID: 42,
		Name:      "Asha Patel",
		Email:     "asha@example.com",
		Role:      models.RoleResident,
	}

	token, expiresIn, err := svc.GenerateToken(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.Equal(t, "Asha Patel", claims.Name)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, string(models.RoleResident), claims.Role)
	assert.Equal(t, "societyhub.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "token should carry a unique jti")

	assert.Equal(t, identity, claims.Identity())
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "societyhub.test",
	})

	token, _, err := svc.GenerateToken(models.Identity{SubjectID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(models.Identity{SubjectID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsRejectsIncompleteIdentity(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	t.Run("empty token string", func(t *testing.T) {
		_, err := svc.ValidateAndExtractClaims("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("zero subject id", func(t *testing.T) {
		token, _, err := svc.GenerateToken(models.Identity{SubjectID: 0, Role: models.RoleResident})
		require.NoError(t, err)

		_, err = svc.ValidateAndExtractClaims(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing role", func(t *testing.T) {
		token, _, err := svc.GenerateToken(models.Identity{SubjectID: 7})
		require.NoError(t, err)

		_, err = svc.ValidateAndExtractClaims(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	t.Run("valid header", func(t *testing.T) {
		token, err := ExtractBearerToken("Bearer abc.def.ghi")
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := ExtractBearerToken("")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, err := ExtractBearerToken("Basic dXNlcjpwYXNz")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("lowercase scheme", func(t *testing.T) {
		_, err := ExtractBearerToken("bearer abc")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}
