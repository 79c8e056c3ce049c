// Package auth validates admin tokens for operational endpoints.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeAdmin is the scope claim required for admin endpoints.
const ScopeAdmin = "admin"

// Predefined token errors.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrNotAdmin     = errors.New("token lacks admin scope")
)

// Claims are the claims carried by admin tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Scope is the granted scope; admin endpoints require ScopeAdmin.
	Scope string `json:"scope"`
}

// TokenValidatorConfig holds configuration for the token validator.
type TokenValidatorConfig struct {
	// SigningKey is the shared HMAC secret.
	SigningKey string

	// Issuer is the expected issuer claim (optional).
	Issuer string
}

// TokenValidator validates HS256-signed admin tokens. There is no end-user
// authentication in this service; tokens are minted out of band for
// operators.
type TokenValidator struct {
	signingKey []byte
	issuer     string
}

// NewTokenValidator creates a token validator.
func NewTokenValidator(cfg TokenValidatorConfig) *TokenValidator {
	return &TokenValidator{
		signingKey: []byte(cfg.SigningKey),
		issuer:     cfg.Issuer,
	}
}

// ValidateAdminToken parses and validates tokenString, requiring the admin
// scope.
func (v *TokenValidator) ValidateAdminToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, ErrInvalidToken
	}
	if claims.Scope != ScopeAdmin {
		return nil, ErrNotAdmin
	}
	return claims, nil
}

// MintAdminToken creates a signed admin token, used by ops tooling and
// tests.
func (v *TokenValidator) MintAdminToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
		},
		Scope: ScopeAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing admin token: %w", err)
	}
	return signed, nil
}
