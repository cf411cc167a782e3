package impl

import (
	"context"
	"testing"
	"time"

	"docgate/internal/domain/entity"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
	mockRepo "docgate/internal/mocks/repository"
	mockService "docgate/internal/mocks/service"
	"docgate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	provider     *mockService.MockIdentityProvider
	tokenService *mockService.MockSessionTokenService
}

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	mocks := &authServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		provider:     mockService.NewMockIdentityProvider(t),
		tokenService: mockService.NewMockSessionTokenService(t),
	}
	srv := NewAuthService(AuthServiceParams{
		TxManager:    mocks.txManager,
		Provider:     mocks.provider,
		TokenService: mocks.tokenService,
		Logger:       newDiscardLogger(),
	})

	return srv, mocks
}

func newTestLoginGrant() *entity.LoginGrant {
	return &entity.LoginGrant{
		IdentityKey:       "sub-1",
		AccessCredential:  "access-1",
		RefreshCredential: strPtr("refresh-1"),
		Attributes: entity.Attributes{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
		},
	}
}

func TestAuthService_BeginLogin(t *testing.T) {
	srv, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.provider.EXPECT().AuthorizationURL(ctx).Return("https://accounts.example.com/auth?state=abc", nil)

	authURL, err := srv.BeginLogin(ctx)

	require.NoError(t, err)
	assert.Equal(t, "https://accounts.example.com/auth?state=abc", authURL)
}

func TestAuthService_BeginLogin_Error(t *testing.T) {
	srv, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.provider.EXPECT().AuthorizationURL(ctx).Return("", errors.New("entropy exhausted"))

	_, err := srv.BeginLogin(ctx)

	require.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	srv, mocks := newTestAuthService(t)
	ctx := context.Background()
	grant := newTestLoginGrant()
	stored := &entity.Credential{
		IdentityKey:       grant.IdentityKey,
		AccessCredential:  grant.AccessCredential,
		RefreshCredential: grant.RefreshCredential,
		Attributes:        grant.Attributes,
	}
	expiresAt := time.Now().Add(time.Hour)

	mocks.provider.EXPECT().ValidateState("state-1").Return(true)
	mocks.provider.EXPECT().Exchange(ctx, "code-1").Return(grant, nil)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)
			mockCredentialRepo.EXPECT().UpsertOnLogin(ctx, grant).Return(stored, nil)

			return fn(mockFactory)
		})
	mocks.tokenService.EXPECT().Issue("sub-1", grant.Attributes).
		Return(&service.IssuedSessionToken{Token: "session-1", ExpiresAt: expiresAt}, nil)

	output, err := srv.CompleteLogin(ctx, &usecase.CompleteLoginInput{Code: "code-1", State: "state-1"})

	require.NoError(t, err)
	assert.Equal(t, "session-1", output.SessionToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Same(t, stored, output.Credential)
}

func TestAuthService_CompleteLogin_InvalidState(t *testing.T) {
	srv, mocks := newTestAuthService(t)

	mocks.provider.EXPECT().ValidateState("forged").Return(false)

	_, err := srv.CompleteLogin(context.Background(), &usecase.CompleteLoginInput{Code: "code-1", State: "forged"})

	require.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestAuthService_CompleteLogin_MissingCode(t *testing.T) {
	srv, mocks := newTestAuthService(t)

	mocks.provider.EXPECT().ValidateState("state-1").Return(true)

	_, err := srv.CompleteLogin(context.Background(), &usecase.CompleteLoginInput{State: "state-1"})

	require.ErrorIs(t, err, domainerrors.ErrOAuthCodeInvalid)
}

func TestAuthService_CompleteLogin_ExchangeFails(t *testing.T) {
	srv, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.provider.EXPECT().ValidateState("state-1").Return(true)
	mocks.provider.EXPECT().Exchange(ctx, "code-1").Return(nil, errors.New("invalid_grant"))

	_, err := srv.CompleteLogin(ctx, &usecase.CompleteLoginInput{Code: "code-1", State: "state-1"})

	require.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_CompleteLogin_StoreFails(t *testing.T) {
	srv, mocks := newTestAuthService(t)
	ctx := context.Background()

	mocks.provider.EXPECT().ValidateState("state-1").Return(true)
	mocks.provider.EXPECT().Exchange(ctx, "code-1").Return(newTestLoginGrant(), nil)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection refused"))

	_, err := srv.CompleteLogin(ctx, &usecase.CompleteLoginInput{Code: "code-1", State: "state-1"})

	require.ErrorIs(t, err, domainerrors.ErrCredentialUpdateFailed)
}

func TestAuthService_CompleteLogin_IssueFails(t *testing.T) {
	srv, mocks := newTestAuthService(t)
	ctx := context.Background()
	grant := newTestLoginGrant()

	mocks.provider.EXPECT().ValidateState("state-1").Return(true)
	mocks.provider.EXPECT().Exchange(ctx, "code-1").Return(grant, nil)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)
			mockCredentialRepo.EXPECT().UpsertOnLogin(ctx, grant).
				Return(&entity.Credential{IdentityKey: "sub-1", Attributes: grant.Attributes}, nil)

			return fn(mockFactory)
		})
	mocks.tokenService.EXPECT().Issue("sub-1", grant.Attributes).Return(nil, errors.New("empty secret"))

	_, err := srv.CompleteLogin(ctx, &usecase.CompleteLoginInput{Code: "code-1", State: "state-1"})

	require.ErrorIs(t, err, domainerrors.ErrSessionIssueFailed)
}

func TestAuthService_ValidateSessionToken(t *testing.T) {
	srv, mocks := newTestAuthService(t)
	claims := newTestClaims("sub-1")

	mocks.tokenService.EXPECT().Validate("good").Return(claims, nil)
	mocks.tokenService.EXPECT().Validate("expired").Return(nil, &service.ExpiredTokenError{Claims: claims})

	got, err := srv.ValidateSessionToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", got.IdentityKey())

	_, err = srv.ValidateSessionToken(context.Background(), "expired")
	require.ErrorIs(t, err, domainerrors.ErrSessionTokenInvalid)
}
