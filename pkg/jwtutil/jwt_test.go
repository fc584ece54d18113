package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	util := NewJWTUtil(&JWTConfig{SigningKey: "secret", ExpirationHours: 1})

	token, err := util.GenerateAdminToken("ops")
	require.NoError(t, err)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "ops", claims.Subject)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	token, err := NewJWTUtil(&JWTConfig{SigningKey: "one", ExpirationHours: 1}).GenerateAdminToken("ops")
	require.NoError(t, err)

	_, err = NewJWTUtil(&JWTConfig{SigningKey: "two", ExpirationHours: 1}).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	util := NewJWTUtil(&JWTConfig{SigningKey: "secret", ExpirationHours: 1})
	util.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := util.GenerateAdminToken("ops")
	require.NoError(t, err)

	_, err = util.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	claims := AdminClaims{Role: RoleAdmin}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTUtil(&JWTConfig{SigningKey: "secret"}).ValidateToken(token)
	assert.Error(t, err)
}

func TestMissingConfig(t *testing.T) {
	util := NewJWTUtil(nil)
	_, err := util.GenerateAdminToken("ops")
	assert.Error(t, err)
	_, err = util.ValidateToken("x")
	assert.Error(t, err)
}
