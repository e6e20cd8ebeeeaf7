package core

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ensure TokenSigner implements TokenProvider
var _ TokenProvider = (*TokenSigner)(nil)

// TokenSigner issues and verifies stateless HS256 tokens. Validity is
// determined entirely by the signature and the embedded expiry; there is no
// server-side session state and no revocation.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	return &TokenSigner{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token whose subject is the account id.
func (t *TokenSigner) Issue(accountID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	})
	return token.SignedString(t.secret)
}

// Verify checks the signature and expiry and returns the embedded account id.
// It does not check that the account still exists; callers needing that
// guarantee must re-fetch it from the store.
func (t *TokenSigner) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
