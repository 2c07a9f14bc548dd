package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultIssuer is the iss claim stamped on every token
	DefaultIssuer = "sample-auth-api"
	// DefaultTokenExpiration bounds how long an access token stays valid
	DefaultTokenExpiration = time.Hour
)

// TokenService mints signed access tokens for authenticated users. Nothing
// in this service consumes tokens, verification belongs to the callers.
type TokenService interface {
	Generate(user *User) (string, error)
}

// JWTClaims is the claim set carried by issued tokens
type JWTClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenServiceImpl implements the TokenService interface
type TokenServiceImpl struct {
	signingKey []byte
	expiration time.Duration
	issuer     string
	logger     Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(signingKey []byte, expiration time.Duration, issuer string, logger Logger) TokenService {
	if expiration <= 0 {
		expiration = DefaultTokenExpiration
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenServiceImpl{
		signingKey: signingKey,
		expiration: expiration,
		issuer:     issuer,
		logger:     logger,
	}
}

// Generate creates a signed JWT carrying the user's identity claims
func (ts *TokenServiceImpl) Generate(user *User) (string, error) {
	if len(ts.signingKey) == 0 {
		return "", ErrMissingSigningKey
	}

	now := time.Now()
	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiration)),
		},
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		ts.logger.Error("TokenService failed to sign claims: %v", err)
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}

	return signed, nil
}
