package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin_IssuesAdminToken(t *testing.T) {
	auth, err := NewAuthService("s3cret", "", "signing-key", time.Hour)
	require.NoError(t, err)

	signed, err := auth.Login("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("signing-key"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, err := NewAuthService("s3cret", "", "signing-key", time.Hour)
	require.NoError(t, err)

	_, err = auth.Login("guess")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewAuthService_PrecomputedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth, err := NewAuthService("", string(hash), "signing-key", time.Hour)
	require.NoError(t, err)

	_, err = auth.Login("s3cret")
	assert.NoError(t, err)
}

func TestNewAuthService_NoPasswordConfigured(t *testing.T) {
	_, err := NewAuthService("", "", "signing-key", time.Hour)
	assert.Error(t, err)
}
