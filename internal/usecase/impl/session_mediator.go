package impl

import (
	"context"
	"log/slog"

	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
	"docgate/internal/usecase"

	"go.uber.org/fx"
)

// sessionMediator implements the SessionMediator interface.
type sessionMediator struct {
	tokenService service.SessionTokenService
	refresher    usecase.TokenRefresher
	logger       *slog.Logger
}

// SessionMediatorParams holds dependencies for SessionMediator, injected by Fx.
type SessionMediatorParams struct {
	fx.In

	TokenService service.SessionTokenService
	Refresher    usecase.TokenRefresher
	Logger       *slog.Logger
}

// NewSessionMediator is the constructor for sessionMediator.
func NewSessionMediator(params SessionMediatorParams) usecase.SessionMediator {
	return &sessionMediator{
		tokenService: params.TokenService,
		refresher:    params.Refresher,
		logger:       params.Logger,
	}
}

func (m *sessionMediator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// Authorize runs the session state machine for one request. Every path ends in
// StateAuthorized or StateRejected.
func (m *sessionMediator) Authorize(ctx context.Context, authorizationHeader string) *usecase.Decision {
	decision := &usecase.Decision{
		State: usecase.StateUnauthenticated,
		Trail: []usecase.State{usecase.StateUnauthenticated},
	}

	token, err := usecase.ParseBearer(authorizationHeader)
	if errors.Is(err, usecase.ErrNoSessionToken) {
		return m.reject(ctx, decision, usecase.ReasonNoCredential, nil)
	}
	if err != nil {
		return m.reject(ctx, decision, usecase.ReasonInvalidCredential, nil)
	}

	advance(decision, usecase.StateValidatingToken)

	claims, err := m.tokenService.Validate(token)
	if err == nil {
		decision.Identity = identityFromClaims(claims)
		advance(decision, usecase.StateAuthorized)

		return decision
	}

	expired, ok := errors.AsType[*service.ExpiredTokenError](err)
	if !ok || expired.Claims == nil {
		return m.reject(ctx, decision, usecase.ReasonInvalidCredential, err)
	}

	// The signature of an expired token was still verified, so its subject is trusted here.
	decision.Identity = identityFromClaims(expired.Claims)
	advance(decision, usecase.StateNeedsRefresh)

	return m.refresh(ctx, decision)
}

func (m *sessionMediator) refresh(ctx context.Context, decision *usecase.Decision) *usecase.Decision {
	result, err := m.refresher.Refresh(ctx, decision.Identity.Key)
	if err != nil {
		return m.reject(ctx, decision, refreshFailureReason(err), err)
	}

	decision.AccessCredential = result.AccessCredential

	renewed, err := m.tokenService.Issue(decision.Identity.Key, decision.Identity.Attributes)
	if err != nil {
		// The refresh already succeeded; the client keeps its old token and comes back through here.
		m.log(ctx).Error("Failed to issue renewed session token",
			slog.String("identity_key", decision.Identity.Key),
			slog.Any("error", err),
		)
	} else {
		decision.RenewedSessionToken = renewed.Token
	}

	advance(decision, usecase.StateAuthorized)

	return decision
}

func (m *sessionMediator) reject(ctx context.Context, decision *usecase.Decision, reason usecase.Reason, cause error) *usecase.Decision {
	decision.Reason = reason
	advance(decision, usecase.StateRejected)

	attrs := []any{
		slog.String("reason", string(reason)),
		slog.Any("trail", decision.Trail),
	}
	if decision.Identity.Key != "" {
		attrs = append(attrs, slog.String("identity_key", decision.Identity.Key))
	}
	if cause != nil {
		attrs = append(attrs, slog.Any("error", cause))
	}

	logger := m.log(ctx)
	switch reason {
	case usecase.ReasonProviderUnavailable, usecase.ReasonStoreUnavailable:
		logger.Warn("Session rejected", attrs...)
	default:
		logger.Info("Session rejected", attrs...)
	}

	return decision
}

func refreshFailureReason(err error) usecase.Reason {
	switch {
	case errors.Is(err, usecase.ErrNoRefreshCredential),
		errors.Is(err, usecase.ErrRefreshInvalidated),
		errors.Is(err, repository.ErrCredentialNotFound):
		return usecase.ReasonReauthRequired
	case errors.Is(err, usecase.ErrProviderUnavailable):
		return usecase.ReasonProviderUnavailable
	default:
		return usecase.ReasonStoreUnavailable
	}
}

func advance(decision *usecase.Decision, next usecase.State) {
	decision.State = next
	decision.Trail = append(decision.Trail, next)
}

func identityFromClaims(claims *service.SessionClaims) usecase.Identity {
	return usecase.Identity{
		Key:        claims.IdentityKey(),
		Attributes: claims.Attributes(),
	}
}
