package impl

import (
	"context"
	"log/slog"
	"time"

	"docgate/config"
	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/domain/entity"
	"docgate/internal/domain/lifecycle"
	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
	"docgate/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// tokenRefresher implements the TokenRefresher interface.
type tokenRefresher struct {
	credentialRepo  repository.CredentialRepository
	provider        service.IdentityProvider
	providerTimeout time.Duration
	serialize       bool
	inflight        singleflight.Group
	logger          *slog.Logger
}

// TokenRefresherParams holds dependencies for TokenRefresher, injected by Fx.
type TokenRefresherParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Provider       service.IdentityProvider
	Config         *config.Config
	Logger         *slog.Logger
}

// NewTokenRefresher is the constructor for tokenRefresher.
func NewTokenRefresher(params TokenRefresherParams) usecase.TokenRefresher {
	refresher := &tokenRefresher{
		credentialRepo:  params.CredentialRepo,
		provider:        params.Provider,
		providerTimeout: lifecycle.DefaultTimeout,
		logger:          params.Logger,
	}

	if params.Config != nil {
		if params.Config.GoogleOAuth != nil && params.Config.GoogleOAuth.Timeout > 0 {
			refresher.providerTimeout = params.Config.GoogleOAuth.Timeout
		}
		if params.Config.Session != nil {
			refresher.serialize = params.Config.Session.SerializeRefresh
		}
	}

	return refresher
}

func (r *tokenRefresher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Refresh exchanges the stored refresh credential of identityKey for a new access credential.
func (r *tokenRefresher) Refresh(ctx context.Context, identityKey string) (*usecase.RefreshResult, error) {
	if !r.serialize {
		return r.refresh(ctx, identityKey)
	}

	// Waiters share one provider call, so it must not die with the first caller's request.
	detached := context.WithoutCancel(ctx)
	value, err, shared := r.inflight.Do(identityKey, func() (any, error) {
		return r.refresh(detached, identityKey)
	})
	if shared {
		r.log(ctx).Debug("Joined in-flight refresh", slog.String("identity_key", identityKey))
	}
	if err != nil {
		return nil, err
	}

	result, _ := value.(*usecase.RefreshResult)

	return result, nil
}

func (r *tokenRefresher) refresh(ctx context.Context, identityKey string) (*usecase.RefreshResult, error) {
	logger := r.log(ctx).With(slog.String("identity_key", identityKey))

	record, err := r.credentialRepo.GetByIdentityKey(ctx, identityKey)
	if err != nil {
		return nil, errors.Wrap(err, "load credential")
	}

	if !record.HasRefreshCredential() {
		logger.Info("No refresh credential stored, re-authentication required")

		return nil, usecase.ErrNoRefreshCredential
	}

	refreshed, err := r.exchange(ctx, *record.RefreshCredential)
	switch {
	case errors.Is(err, service.ErrGrantInvalidated):
		return nil, r.invalidate(ctx, logger, identityKey)
	case err != nil:
		logger.Warn("Refresh failed, provider unavailable", slog.Any("error", err))

		return nil, errors.Join(usecase.ErrProviderUnavailable, err)
	}

	if err := r.persist(ctx, record, refreshed); err != nil {
		logger.Error("Failed to store refreshed credential", slog.Any("error", err))

		return nil, err
	}

	logger.Info("Access credential refreshed", slog.Bool("rotated", isRotated(record, refreshed)))

	return &usecase.RefreshResult{
		AccessCredential: refreshed.AccessCredential,
		Attributes:       record.Attributes,
	}, nil
}

func (r *tokenRefresher) exchange(ctx context.Context, refreshCredential string) (*service.RefreshedCredential, error) {
	providerCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.providerTimeout)
	defer cancel()

	refreshed, err := r.provider.Refresh(providerCtx, refreshCredential)
	if err != nil {
		return nil, err
	}

	if refreshed == nil || refreshed.AccessCredential == "" {
		return nil, errors.Wrap(service.ErrProviderUnavailable, "provider returned an empty access credential")
	}

	return refreshed, nil
}

// invalidate clears the revoked refresh credential so it is never sent to the provider again.
func (r *tokenRefresher) invalidate(ctx context.Context, logger *slog.Logger, identityKey string) error {
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := r.credentialRepo.ClearRefreshCredential(storeCtx, identityKey); err != nil {
		logger.Error("Failed to clear invalidated refresh credential", slog.Any("error", err))

		return errors.Join(usecase.ErrRefreshInvalidated, err)
	}

	logger.Warn("Refresh credential invalidated by provider and cleared")

	return usecase.ErrRefreshInvalidated
}

func (r *tokenRefresher) persist(ctx context.Context, record *entity.Credential, refreshed *service.RefreshedCredential) error {
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if isRotated(record, refreshed) {
		return errors.Wrap(
			r.credentialRepo.UpdateRotatedCredentials(storeCtx, record.IdentityKey, refreshed.AccessCredential, refreshed.RefreshCredential),
			"update rotated credentials",
		)
	}

	return errors.Wrap(
		r.credentialRepo.UpdateAccessCredential(storeCtx, record.IdentityKey, refreshed.AccessCredential),
		"update access credential",
	)
}

func isRotated(record *entity.Credential, refreshed *service.RefreshedCredential) bool {
	return refreshed.RefreshCredential != "" && refreshed.RefreshCredential != *record.RefreshCredential
}
