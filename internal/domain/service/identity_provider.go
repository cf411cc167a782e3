// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"time"

	"docgate/internal/domain/entity"
	"docgate/internal/errors"
)

var (
	// ErrGrantInvalidated is returned when the provider reports the refresh credential
	// as revoked or otherwise permanently unusable ("invalid_grant").
	ErrGrantInvalidated = errors.New("refresh grant invalidated by provider")

	// ErrProviderUnavailable covers timeouts, 5xx responses and transport failures.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// RefreshedCredential is the result of a refresh-token exchange.
type RefreshedCredential struct {
	AccessCredential string
	// RefreshCredential is set only when the provider rotated it.
	RefreshCredential string
	Expiry            time.Time
}

// IdentityProvider abstracts the third-party OAuth provider used for sign-in
// and for minting new access credentials.
type IdentityProvider interface {
	// AuthorizationURL creates a single-use CSRF state and returns the consent URL carrying it.
	AuthorizationURL(ctx context.Context) (string, error)

	// ValidateState consumes a state previously handed out by AuthorizationURL.
	ValidateState(state string) bool

	// Exchange trades an authorization code for provider credentials and the user's profile.
	Exchange(ctx context.Context, code string) (*entity.LoginGrant, error)

	// Refresh mints a new access credential. Failures are classified as
	// ErrGrantInvalidated or ErrProviderUnavailable.
	Refresh(ctx context.Context, refreshCredential string) (*RefreshedCredential, error)
}
