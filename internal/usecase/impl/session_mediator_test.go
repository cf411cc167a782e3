package impl

import (
	"context"
	"testing"
	"time"

	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
	mockService "docgate/internal/mocks/service"
	mockUsecase "docgate/internal/mocks/usecase"
	"docgate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestSessionMediator(t *testing.T) (usecase.SessionMediator, *mockService.MockSessionTokenService, *mockUsecase.MockTokenRefresher) {
	t.Helper()

	tokenService := mockService.NewMockSessionTokenService(t)
	refresher := mockUsecase.NewMockTokenRefresher(t)
	mediator := NewSessionMediator(SessionMediatorParams{
		TokenService: tokenService,
		Refresher:    refresher,
		Logger:       newDiscardLogger(),
	})

	return mediator, tokenService, refresher
}

func TestSessionMediator_Authorize_NoCredential(t *testing.T) {
	mediator, _, _ := newTestSessionMediator(t)

	for _, header := range []string{"", "   ", "Bearer", "Bearer    ", "bearer "} {
		decision := mediator.Authorize(context.Background(), header)

		assert.Equal(t, usecase.StateRejected, decision.State)
		assert.Equal(t, usecase.ReasonNoCredential, decision.Reason, header)
		assert.Equal(t, []usecase.State{usecase.StateUnauthenticated, usecase.StateRejected}, decision.Trail)
	}
}

func TestSessionMediator_Authorize_NotBearer(t *testing.T) {
	mediator, _, _ := newTestSessionMediator(t)

	for _, header := range []string{"Basic dXNlcjpwYXNz", "token-without-scheme", "Token abc"} {
		decision := mediator.Authorize(context.Background(), header)

		assert.Equal(t, usecase.StateRejected, decision.State, header)
		assert.Equal(t, usecase.ReasonInvalidCredential, decision.Reason, header)
	}
}

func TestSessionMediator_Authorize_ValidToken(t *testing.T) {
	mediator, tokenService, _ := newTestSessionMediator(t)

	tokenService.EXPECT().Validate("good-token").Return(newTestClaims("sub-1"), nil)

	decision := mediator.Authorize(context.Background(), "Bearer good-token")

	assert.True(t, decision.Authorized())
	assert.False(t, decision.Refreshed())
	assert.Equal(t, usecase.ReasonNone, decision.Reason)
	assert.Equal(t, "sub-1", decision.Identity.Key)
	assert.Equal(t, "ada@example.com", decision.Identity.Attributes.Email)
	assert.Empty(t, decision.AccessCredential)
	assert.Empty(t, decision.RenewedSessionToken)
	assert.Equal(t, []usecase.State{
		usecase.StateUnauthenticated,
		usecase.StateValidatingToken,
		usecase.StateAuthorized,
	}, decision.Trail)
}

func TestSessionMediator_Authorize_SchemeIsCaseInsensitive(t *testing.T) {
	mediator, tokenService, _ := newTestSessionMediator(t)

	tokenService.EXPECT().Validate("good-token").Return(newTestClaims("sub-1"), nil)

	decision := mediator.Authorize(context.Background(), "bearer good-token")

	assert.True(t, decision.Authorized())
}

func TestSessionMediator_Authorize_MalformedToken(t *testing.T) {
	mediator, tokenService, _ := newTestSessionMediator(t)

	tokenService.EXPECT().Validate("forged").
		Return(nil, errors.Wrap(service.ErrSessionTokenMalformed, "signature is invalid"))

	decision := mediator.Authorize(context.Background(), "Bearer forged")

	assert.Equal(t, usecase.StateRejected, decision.State)
	assert.Equal(t, usecase.ReasonInvalidCredential, decision.Reason)
	assert.Equal(t, []usecase.State{
		usecase.StateUnauthenticated,
		usecase.StateValidatingToken,
		usecase.StateRejected,
	}, decision.Trail)
}

func TestSessionMediator_Authorize_ExpiredThenRefreshed(t *testing.T) {
	mediator, tokenService, refresher := newTestSessionMediator(t)
	ctx := context.Background()
	claims := newTestClaims("sub-1")
	renewedAt := time.Now().Add(time.Hour)

	tokenService.EXPECT().Validate("expired-token").Return(nil, &service.ExpiredTokenError{Claims: claims})
	refresher.EXPECT().Refresh(ctx, "sub-1").
		Return(&usecase.RefreshResult{AccessCredential: "access-new"}, nil)
	tokenService.EXPECT().Issue("sub-1", claims.Attributes()).
		Return(&service.IssuedSessionToken{Token: "renewed-token", ExpiresAt: renewedAt}, nil)

	decision := mediator.Authorize(ctx, "Bearer expired-token")

	assert.True(t, decision.Authorized())
	assert.True(t, decision.Refreshed())
	assert.Equal(t, "sub-1", decision.Identity.Key)
	assert.Equal(t, "access-new", decision.AccessCredential)
	assert.Equal(t, "renewed-token", decision.RenewedSessionToken)
	assert.Equal(t, []usecase.State{
		usecase.StateUnauthenticated,
		usecase.StateValidatingToken,
		usecase.StateNeedsRefresh,
		usecase.StateAuthorized,
	}, decision.Trail)
}

func TestSessionMediator_Authorize_RenewalFailureStillAuthorizes(t *testing.T) {
	mediator, tokenService, refresher := newTestSessionMediator(t)
	ctx := context.Background()

	tokenService.EXPECT().Validate("expired-token").
		Return(nil, &service.ExpiredTokenError{Claims: newTestClaims("sub-1")})
	refresher.EXPECT().Refresh(ctx, "sub-1").
		Return(&usecase.RefreshResult{AccessCredential: "access-new"}, nil)
	tokenService.EXPECT().Issue("sub-1", mock.AnythingOfType("entity.Attributes")).
		Return(nil, errors.New("signing failed"))

	decision := mediator.Authorize(ctx, "Bearer expired-token")

	assert.True(t, decision.Authorized())
	assert.Equal(t, "access-new", decision.AccessCredential)
	assert.Empty(t, decision.RenewedSessionToken)
}

func TestSessionMediator_Authorize_RefreshFailures(t *testing.T) {
	tests := []struct {
		name       string
		refreshErr error
		wantReason usecase.Reason
	}{
		{name: "no refresh credential", refreshErr: usecase.ErrNoRefreshCredential, wantReason: usecase.ReasonReauthRequired},
		{name: "invalidated", refreshErr: usecase.ErrRefreshInvalidated, wantReason: usecase.ReasonReauthRequired},
		{
			name:       "record missing",
			refreshErr: errors.Wrap(repository.ErrCredentialNotFound, "load credential"),
			wantReason: usecase.ReasonReauthRequired,
		},
		{
			name:       "provider unavailable",
			refreshErr: errors.Join(usecase.ErrProviderUnavailable, errors.New("503")),
			wantReason: usecase.ReasonProviderUnavailable,
		},
		{name: "store failure", refreshErr: errors.New("connection refused"), wantReason: usecase.ReasonStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mediator, tokenService, refresher := newTestSessionMediator(t)
			ctx := context.Background()

			tokenService.EXPECT().Validate("expired-token").
				Return(nil, &service.ExpiredTokenError{Claims: newTestClaims("sub-1")})
			refresher.EXPECT().Refresh(ctx, "sub-1").Return(nil, tt.refreshErr)

			decision := mediator.Authorize(ctx, "Bearer expired-token")

			assert.Equal(t, usecase.StateRejected, decision.State)
			assert.Equal(t, tt.wantReason, decision.Reason)
			assert.Empty(t, decision.AccessCredential)
			assert.Equal(t, []usecase.State{
				usecase.StateUnauthenticated,
				usecase.StateValidatingToken,
				usecase.StateNeedsRefresh,
				usecase.StateRejected,
			}, decision.Trail)
			tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
		})
	}
}

func TestSessionMediator_Authorize_ExpiredWithoutClaims(t *testing.T) {
	mediator, tokenService, _ := newTestSessionMediator(t)

	tokenService.EXPECT().Validate("expired-token").Return(nil, &service.ExpiredTokenError{})

	decision := mediator.Authorize(context.Background(), "Bearer expired-token")

	assert.Equal(t, usecase.StateRejected, decision.State)
	assert.Equal(t, usecase.ReasonInvalidCredential, decision.Reason)
}
