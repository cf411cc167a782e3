// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"docgate/config"
	"docgate/internal/domain/entity"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
)

// jwtService is a concrete implementation of the SessionTokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing session tokens.
	issuer string           // Expected "iss" claim. Empty disables the check.
	ttl    time.Duration    // Time-to-live for session tokens.
	now    func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	return NewJWTServiceWithClock(cfg, time.Now)
}

// NewJWTServiceWithClock is NewJWTService with an injected clock.
func NewJWTServiceWithClock(cfg *config.Config, now func() time.Time) (service.SessionTokenService, error) {
	if cfg == nil || cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		issuer: cfg.Session.Issuer,
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs a session token carrying the identity key and an attribute snapshot.
func (s *jwtService) Issue(identityKey string, attributes entity.Attributes) (*service.IssuedSessionToken, error) {
	if identityKey == "" {
		return nil, errors.New("identity key must be provided")
	}

	now := s.now()
	claims := &service.SessionClaims{
		Email:   attributes.Email,
		Name:    attributes.Name,
		Picture: attributes.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   identityKey,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign session token")
	}

	return &service.IssuedSessionToken{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Validate verifies the signature first and only then looks at the claims, so the
// claims inside an ExpiredTokenError are always authentic.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Expiry is checked below against the injected clock.
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return nil, errors.Wrapf(service.ErrSessionTokenMalformed, "parse: %v", err)
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, errors.Wrap(service.ErrSessionTokenMalformed, "missing sub or exp")
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, errors.Wrap(service.ErrSessionTokenMalformed, "unexpected issuer")
	}

	// exp has seconds precision; comparing at the same precision keeps sub-second jitter out.
	if !s.now().Truncate(time.Second).Before(claims.ExpiresAt.Time) {
		return nil, &service.ExpiredTokenError{Claims: claims}
	}

	return claims, nil
}
