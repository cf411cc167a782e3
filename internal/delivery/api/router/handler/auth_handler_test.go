package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"docgate/config"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/domain/service"
	mockUsecase "docgate/internal/mocks/usecase"
	"docgate/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.FrontendURL = "https://app.example.com/"
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Config: cfg,
		Logger: newDiscardLogger(),
	}), authUC
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().BeginLogin(mock.Anything).Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/google", "")
	require.NoError(t, h.GoogleLogin(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleLogin_Error(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().BeginLogin(mock.Anything).Return("", domainerrors.ErrInternalError.WrapMessage("boom"))

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/google", "")
	require.NoError(t, h.GoogleLogin(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestAuthHandler_GoogleCallback_Success(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().
		CompleteLogin(mock.Anything, &usecase.CompleteLoginInput{Code: "code-1", State: "state-1"}).
		Return(&usecase.LoginOutput{SessionToken: "jwt.token.value"}, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/google/callback?code=code-1&state=state-1", "")
	require.NoError(t, h.GoogleCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "app.example.com", location.Host)
	assert.Equal(t, "/", location.Path)
	assert.Equal(t, "jwt.token.value", location.Query().Get("token"))
}

func TestAuthHandler_GoogleCallback_Failure(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().CompleteLogin(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOAuthStateInvalid)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/google/callback?code=code-1&state=forged", "")
	require.NoError(t, h.GoogleCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginFailurePath, rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_LoginFailure(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, LoginFailurePath, "")
	require.NoError(t, h.LoginFailure(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTHENTICATION_FAILED")
}

func TestAuthHandler_ValidateToken(t *testing.T) {
	expiresAt := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)

	t.Run("valid token", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().ValidateSessionToken(mock.Anything, "good-token").Return(&service.SessionClaims{
			Email: "ada@example.com",
			Name:  "Ada",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "google-sub-1",
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}, nil)

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/validate-token", "")
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		require.NoError(t, h.ValidateToken(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"identityKey":"google-sub-1"`)
		assert.Contains(t, rec.Body.String(), `"email":"ada@example.com"`)
		assert.Contains(t, rec.Body.String(), `"expiresAt":"2025-03-01T13:00:00Z"`)
	})

	t.Run("invalid token", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().ValidateSessionToken(mock.Anything, "expired-token").
			Return(nil, domainerrors.ErrSessionTokenInvalid.WrapMessage("session token expired"))

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/validate-token", "")
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer expired-token")
		require.NoError(t, h.ValidateToken(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/validate-token", "")
		require.NoError(t, h.ValidateToken(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("scheme without token", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/validate-token", "")
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer ")
		require.NoError(t, h.ValidateToken(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
