package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/domain/entity"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	provider     service.IdentityProvider
	tokenService service.SessionTokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Provider     service.IdentityProvider
	TokenService service.SessionTokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		provider:     params.Provider,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin returns the consent URL with a fresh CSRF state embedded.
func (srv *authService) BeginLogin(ctx context.Context) (string, error) {
	authURL, err := srv.provider.AuthorizationURL(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to build authorization URL", slog.Any("error", err))

		return "", domainerrors.ErrInternalError.WrapMessage("build authorization url")
	}

	return authURL, nil
}

// CompleteLogin handles the provider callback: state check, code exchange,
// credential upsert and session token issue.
func (srv *authService) CompleteLogin(ctx context.Context, input *usecase.CompleteLoginInput) (*usecase.LoginOutput, error) {
	if input == nil || !srv.provider.ValidateState(input.State) {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	if strings.TrimSpace(input.Code) == "" {
		return nil, domainerrors.ErrOAuthCodeInvalid
	}

	grant, err := srv.provider.Exchange(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("exchange authorization code")
	}

	var credential *entity.Credential
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var upsertErr error
		credential, upsertErr = txRepoFactory.CredentialRepo().UpsertOnLogin(ctx, grant)

		return upsertErr
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store login credential",
			slog.String("identity_key", grant.IdentityKey),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrCredentialUpdateFailed.WrapMessage("upsert credential on login")
	}

	issued, err := srv.tokenService.Issue(credential.IdentityKey, credential.Attributes)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, domainerrors.ErrSessionIssueFailed.WrapMessage("issue session token")
	}

	srv.log(ctx).Info("User signed in",
		slog.String("identity_key", credential.IdentityKey),
		slog.Bool("has_refresh_credential", credential.HasRefreshCredential()),
	)

	return &usecase.LoginOutput{
		SessionToken: issued.Token,
		ExpiresAt:    issued.ExpiresAt,
		Credential:   credential,
	}, nil
}

// ValidateSessionToken checks a session token without touching the store.
func (srv *authService) ValidateSessionToken(_ context.Context, token string) (*service.SessionClaims, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrSessionTokenInvalid.WrapMessage(err.Error())
	}

	return claims, nil
}
