package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.GenerateToken(42, KindCustomer, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.PrincipalID)
	assert.Equal(t, KindCustomer, claims.Kind)
}

func TestTokenCodec_PreservesKind(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.GenerateToken(7, KindAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := codec.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, KindAdmin, claims.Kind)
}

func TestTokenCodec_ExpiredToken(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.GenerateToken(42, KindCustomer, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	claims, err := codec.ParseToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenCodec_TamperedToken(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.GenerateToken(42, KindCustomer, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := codec.ParseToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-a").GenerateToken(42, KindCustomer, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := NewTokenCodec("secret-b").ParseToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	claims, err := codec.ParseToken("not.a.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
