package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrCredentialExpired is returned when a token's exp claim is in the past
var ErrCredentialExpired = errors.New("credential expired")

// TokenClaims represents the claims carried by a session token
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Credential is the bearer token presented with authenticated requests.
// The zero value is an anonymous credential.
type Credential struct {
	Token string
}

// NewCredential wraps a token issued by login or signup
func NewCredential(token string) Credential {
	return Credential{Token: token}
}

// Anonymous reports whether the credential carries no token
func (c Credential) Anonymous() bool {
	return c.Token == ""
}

// Header returns the Authorization header value, or "" when anonymous
func (c Credential) Header() string {
	if c.Anonymous() {
		return ""
	}
	return "Bearer " + c.Token
}

// Claims decodes the token claims without verifying the signature. Only the
// backend can verify a token; the client reads claims to fail fast.
func (c Credential) Claims() (*TokenClaims, error) {
	if c.Anonymous() {
		return nil, errors.New("anonymous credential has no claims")
	}
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}

// CheckExpiry returns ErrCredentialExpired if the token carries an exp claim
// that is before now. Opaque tokens that are not JWTs are accepted as is.
func (c Credential) CheckExpiry(now time.Time) error {
	if c.Anonymous() {
		return nil
	}
	claims, err := c.Claims()
	if err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return ErrCredentialExpired
	}
	return nil
}
