package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newTestGenerator(t *testing.T, expiry time.Duration) *JWTGenerator {
	t.Helper()
	gen, err := NewJWTGenerator(JWTGeneratorConfig{
		SecretKey:  testSecret,
		Issuer:     "presidia-backend",
		Audience:   []string{"presidia-api"},
		ExpiryTime: expiry,
	})
	require.NoError(t, err)
	return gen
}

func newTestValidator(t *testing.T) *JWTValidator {
	t.Helper()
	validator, err := NewJWTValidator(JWTConfig{
		SecretKey: testSecret,
		Issuer:    "presidia-backend",
		Audience:  []string{"presidia-api"},
	})
	require.NoError(t, err)
	return validator
}

func TestGenerateAndValidateToken(t *testing.T) {
	gen := newTestGenerator(t, time.Hour)
	validator := newTestValidator(t)

	token, err := gen.GenerateToken("user-1", "dev@presidia.local", []string{"authenticated"})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "dev@presidia.local", claims.Email)
	assert.Equal(t, []string{"authenticated"}, claims.Roles)
}

func TestGenerateToken_ZeroExpiryDefaults(t *testing.T) {
	gen := newTestGenerator(t, 0)
	validator := newTestValidator(t)

	token, err := gen.GenerateToken("user-1", "", nil)
	require.NoError(t, err)

	// The default lifetime applies, so the token is valid now.
	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestValidateToken_Expired(t *testing.T) {
	gen := newTestGenerator(t, -time.Minute)
	validator := newTestValidator(t)

	token, err := gen.GenerateToken("user-1", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	gen, err := NewJWTGenerator(JWTGeneratorConfig{SecretKey: "some-other-secret"})
	require.NoError(t, err)
	validator := newTestValidator(t)

	token, err := gen.GenerateToken("user-1", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	gen, err := NewJWTGenerator(JWTGeneratorConfig{
		SecretKey: testSecret,
		Issuer:    "someone-else",
		Audience:  []string{"presidia-api"},
	})
	require.NoError(t, err)
	validator := newTestValidator(t)

	token, err := gen.GenerateToken("user-1", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingSubject(t *testing.T) {
	gen := newTestGenerator(t, time.Hour)
	validator := newTestValidator(t)

	token, err := gen.GenerateToken("", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	validator := newTestValidator(t)

	_, err := validator.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTValidator_RequiresSecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{})
	assert.Error(t, err)
}
