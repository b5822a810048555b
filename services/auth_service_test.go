package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premium-blog-api/config"
	"premium-blog-api/models"
)

func TestRegister_CreatesNonPremiumUser(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, NewTokenStore(nil))

	resp, err := svc.Register(models.RegisterRequest{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.False(t, resp.User.PremiumFlag)
	assert.Nil(t, resp.User.Subscription)
	assert.NotEqual(t, "password123", resp.User.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, NewTokenStore(nil))

	req := models.RegisterRequest{Username: "writer", Email: "writer@example.com", Password: "password123"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, NewTokenStore(nil))

	_, err := svc.Register(models.RegisterRequest{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "writer@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "writer", resp.User.Username)

	_, err = svc.Login(models.LoginRequest{Email: "writer@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestGeneratedTokenCarriesIdentity(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, NewTokenStore(nil))

	resp, err := svc.Register(models.RegisterRequest{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	require.NoError(t, err)

	assert.Equal(t, resp.User.ID, claims["user_id"])
	assert.Equal(t, "writer", claims["username"])
	assert.NotEmpty(t, claims["jti"])
}

func TestLogout_RevokesToken(t *testing.T) {
	cache := newFakeCache()
	tokens := NewTokenStore(cache)
	svc := NewAuthService(newFakeStore(), tokens)

	require.NoError(t, svc.Logout("jti-1", time.Now().Add(time.Hour)))

	revoked, err := tokens.IsRevoked("jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = tokens.IsRevoked("jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestLogout_ExpiredTokenIsNoop(t *testing.T) {
	cache := newFakeCache()
	tokens := NewTokenStore(cache)

	require.NoError(t, tokens.Revoke("old", time.Now().Add(-time.Minute)))
	assert.Empty(t, cache.flags)
}
