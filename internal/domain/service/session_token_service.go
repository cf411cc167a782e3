package service

import (
	"time"

	"docgate/internal/domain/entity"
	"docgate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSessionTokenMalformed = errors.New("session token malformed")
	ErrSessionTokenExpired   = errors.New("session token expired")
)

// SessionClaims defines the custom claims for session tokens.
// The subject carries the identity key.
type SessionClaims struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) IdentityKey() string {
	return c.Subject
}

func (c *SessionClaims) Attributes() entity.Attributes {
	return entity.Attributes{
		Name:      c.Name,
		Email:     c.Email,
		AvatarURL: c.Picture,
	}
}

// ExpiredTokenError is returned by Validate when the signature checks out but
// the token is at or past its expiry. Claims are safe to use for a refresh.
type ExpiredTokenError struct {
	Claims *SessionClaims
}

func (e *ExpiredTokenError) Error() string {
	return ErrSessionTokenExpired.Error()
}

func (e *ExpiredTokenError) Unwrap() error {
	return ErrSessionTokenExpired
}

// IssuedSessionToken is a freshly signed session token.
type IssuedSessionToken struct {
	Token     string
	ExpiresAt time.Time
}

// SessionTokenService defines the interface for issuing and validating session tokens.
type SessionTokenService interface {
	// Issue signs a new session token for the identity.
	Issue(identityKey string, attributes entity.Attributes) (*IssuedSessionToken, error)

	// Validate checks signature and expiry. It has no side effects.
	Validate(tokenString string) (*SessionClaims, error)
}
