// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"strings"

	"docgate/internal/domain/entity"
	"docgate/internal/errors"
)

// State is a step of the per-request session state machine.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateValidatingToken State = "validating_token"
	StateNeedsRefresh    State = "needs_refresh"
	StateAuthorized      State = "authorized"
	StateRejected        State = "rejected"
)

// Reason explains a rejection. It is logged, never sent to the client.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonNoCredential        Reason = "no credential"
	ReasonInvalidCredential   Reason = "invalid credential"
	ReasonReauthRequired      Reason = "re-authentication required"
	ReasonProviderUnavailable Reason = "provider unavailable"
	ReasonStoreUnavailable    Reason = "credential store unavailable"
)

var (
	// ErrNoRefreshCredential means the record has no refresh credential; only a new login helps.
	ErrNoRefreshCredential = errors.New("no refresh credential stored")
	// ErrRefreshInvalidated means the provider revoked the refresh credential and it was cleared.
	ErrRefreshInvalidated = errors.New("refresh credential invalidated")
	// ErrProviderUnavailable is a transient provider failure; the stored credentials are untouched.
	ErrProviderUnavailable = errors.New("identity provider unavailable")

	// ErrNoSessionToken means the request carried no bearer token at all.
	ErrNoSessionToken = errors.New("no session token")
	// ErrMalformedAuthorization means the Authorization header is not a bearer credential.
	ErrMalformedAuthorization = errors.New("malformed authorization header")
)

const bearerScheme = "Bearer"

// ParseBearer extracts the token from an "Authorization: Bearer <token>" value.
// An empty header and a bare "Bearer" scheme both count as no token.
func ParseBearer(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" || strings.EqualFold(header, bearerScheme) {
		return "", ErrNoSessionToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrMalformedAuthorization
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoSessionToken
	}

	return token, nil
}

// Identity is who the request acts for.
type Identity struct {
	Key        string
	Attributes entity.Attributes
}

// Decision is the mediator's verdict for one request.
type Decision struct {
	State    State
	Reason   Reason
	Identity Identity
	// AccessCredential is set only when the decision went through a refresh.
	AccessCredential string
	// RenewedSessionToken replaces the expired token the client sent; refresh path only.
	RenewedSessionToken string
	// Trail records every state visited, in order.
	Trail []State
}

func (d *Decision) Authorized() bool {
	return d != nil && d.State == StateAuthorized
}

// Refreshed reports whether the request went through the slow path.
func (d *Decision) Refreshed() bool {
	return d != nil && d.AccessCredential != ""
}

// RefreshResult is a freshly minted access credential.
type RefreshResult struct {
	AccessCredential string
	Attributes       entity.Attributes
}

// TokenRefresher exchanges the stored refresh credential for a new access credential.
type TokenRefresher interface {
	Refresh(ctx context.Context, identityKey string) (*RefreshResult, error)
}

// SessionMediator decides, per inbound request, whether to proceed, refresh or reject.
type SessionMediator interface {
	// Authorize takes the raw Authorization header value. It never returns nil.
	Authorize(ctx context.Context, authorizationHeader string) *Decision
}
