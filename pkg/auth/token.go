package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PrincipalKind distinguishes the two kinds of authenticated identity. The
// kind is embedded in every token so a customer token can never be accepted
// where an admin token is expected.
type PrincipalKind string

const (
	KindCustomer PrincipalKind = "customer"
	KindAdmin    PrincipalKind = "admin"
)

// ErrInvalidToken is returned for any token that fails verification:
// tampered, malformed, signed with the wrong secret, or expired. Callers
// must treat it identically to an absent token.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the signed payload carried by a session token.
type SessionClaims struct {
	PrincipalID uint          `json:"principal_id"`
	Kind        PrincipalKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens with a server-held
// symmetric secret. Tokens are opaque to holders; verification only ever
// happens here, server-side.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a codec around the given signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// GenerateToken produces a signed token for the principal, valid until expiry.
func (c *TokenCodec) GenerateToken(principalID uint, kind PrincipalKind, expiry time.Time) (string, error) {
	claims := SessionClaims{
		PrincipalID: principalID,
		Kind:        kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a token and returns its claims. Expiry is enforced
// here and nowhere else; an expired, correctly signed token fails exactly
// like a tampered one.
func (c *TokenCodec) ParseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, jwt.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
