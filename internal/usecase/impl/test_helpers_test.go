package impl

import (
	"io"
	"log/slog"
	"time"

	"docgate/config"
	"docgate/internal/domain/entity"
	"docgate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(serializeRefresh bool) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			Secret:           "test-secret",
			TTL:              time.Hour,
			SerializeRefresh: serializeRefresh,
		},
		GoogleOAuth: &config.GoogleOAuthConfig{
			Timeout: 2 * time.Second,
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func newTestCredential(identityKey string, refreshCredential *string) *entity.Credential {
	return &entity.Credential{
		IdentityKey:       identityKey,
		AccessCredential:  "access-old",
		RefreshCredential: refreshCredential,
		Attributes: entity.Attributes{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
		},
	}
}

func newTestClaims(identityKey string) *service.SessionClaims {
	return &service.SessionClaims{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityKey,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}
