package usecase

import (
	"context"
	"time"

	"docgate/internal/domain/entity"
	"docgate/internal/domain/service"
)

// CompleteLoginInput carries the provider callback parameters.
type CompleteLoginInput struct {
	Code  string `query:"code"`
	State string `query:"state"`
}

// LoginOutput is the result of a finished sign-in.
type LoginOutput struct {
	SessionToken string
	ExpiresAt    time.Time
	Credential   *entity.Credential
}

// AuthUsecase defines the sign-in flow.
type AuthUsecase interface {
	// BeginLogin returns the provider consent URL.
	BeginLogin(ctx context.Context) (string, error)

	// CompleteLogin validates the callback, stores the credentials and issues a session token.
	CompleteLogin(ctx context.Context, input *CompleteLoginInput) (*LoginOutput, error)

	// ValidateSessionToken only checks the token; it never refreshes.
	ValidateSessionToken(ctx context.Context, token string) (*service.SessionClaims, error)
}
