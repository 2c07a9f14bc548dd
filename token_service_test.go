package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	auth "github.com/goliatone/sample-auth-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceGenerate(t *testing.T) {
	svc := auth.NewTokenService([]byte("test-secret"), 0, "", nil)
	user := &auth.User{Username: "alice1", Email: "alice@example.com"}

	signed, err := svc.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := &auth.JWTClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithIssuer(auth.DefaultIssuer))

	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "alice1", claims.Username)
	assert.Equal(t, "alice1", claims.RegisteredClaims.Subject)
	assert.Equal(t, auth.DefaultIssuer, claims.RegisteredClaims.Issuer)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, auth.DefaultTokenExpiration, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenServiceGenerateSignedWithHS256(t *testing.T) {
	svc := auth.NewTokenService([]byte("test-secret"), time.Hour, auth.DefaultIssuer, nil)

	signed, err := svc.Generate(&auth.User{Username: "alice1"})
	require.NoError(t, err)

	token, _, err := jwt.NewParser().ParseUnverified(signed, &auth.JWTClaims{})
	require.NoError(t, err)
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), token.Method.Alg())
}

func TestTokenServiceMissingSigningKey(t *testing.T) {
	svc := auth.NewTokenService(nil, time.Hour, auth.DefaultIssuer, nil)

	_, err := svc.Generate(&auth.User{Username: "alice1"})
	assert.ErrorIs(t, err, auth.ErrMissingSigningKey)
}
