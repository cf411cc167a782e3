package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "docgate/internal/delivery/context"
	mockUsecase "docgate/internal/mocks/usecase"
	"docgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockSessionMediator) {
	t.Helper()

	mediator := mockUsecase.NewMockSessionMediator(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		Mediator: mediator,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), mediator
}

func serveAuthenticated(m *AuthMiddleware, authorization string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/drive/list-files", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := m.Authenticate(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func TestAuthMiddleware_Authenticate_Authorized(t *testing.T) {
	m, mediator := newTestAuthMiddleware(t)

	mediator.EXPECT().Authorize(mock.Anything, "Bearer good").Return(&usecase.Decision{
		State:    usecase.StateAuthorized,
		Identity: usecase.Identity{Key: "google-sub-1"},
	})

	var gotCaller usecase.Caller
	var gotIdentity string
	rec := serveAuthenticated(m, "Bearer good", func(c echo.Context) error {
		gotCaller, _ = GetCaller(c)
		gotIdentity = deliverycontext.GetIdentityKey(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.Caller{IdentityKey: "google-sub-1"}, gotCaller)
	assert.Equal(t, "google-sub-1", gotIdentity)
	assert.Empty(t, rec.Header().Get(HeaderSessionToken))
}

func TestAuthMiddleware_Authenticate_RefreshedSession(t *testing.T) {
	m, mediator := newTestAuthMiddleware(t)

	mediator.EXPECT().Authorize(mock.Anything, "Bearer expired").Return(&usecase.Decision{
		State:               usecase.StateAuthorized,
		Identity:            usecase.Identity{Key: "google-sub-1"},
		AccessCredential:    "access-2",
		RenewedSessionToken: "renewed-token",
	})

	var gotCaller usecase.Caller
	rec := serveAuthenticated(m, "Bearer expired", func(c echo.Context) error {
		gotCaller, _ = GetCaller(c)

		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renewed-token", rec.Header().Get(HeaderSessionToken))
	assert.Equal(t, "access-2", gotCaller.AccessCredential)
}

func TestAuthMiddleware_Authenticate_Rejected(t *testing.T) {
	reasons := []usecase.Reason{
		usecase.ReasonNoCredential,
		usecase.ReasonInvalidCredential,
		usecase.ReasonReauthRequired,
		usecase.ReasonProviderUnavailable,
		usecase.ReasonStoreUnavailable,
	}

	var bodies []string
	for _, reason := range reasons {
		m, mediator := newTestAuthMiddleware(t)
		mediator.EXPECT().Authorize(mock.Anything, "Bearer x").Return(&usecase.Decision{
			State:  usecase.StateRejected,
			Reason: reason,
		})

		called := false
		rec := serveAuthenticated(m, "Bearer x", func(c echo.Context) error {
			called = true

			return nil
		})

		require.Equal(t, http.StatusUnauthorized, rec.Code, reason)
		assert.False(t, called, reason)
		assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
		assert.NotContains(t, rec.Body.String(), string(reason))
		bodies = append(bodies, stripRequestID(rec.Body.String()))
	}

	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
}

func TestGetCaller_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetCaller(c)

	assert.False(t, ok)
}

// stripRequestID drops the per-request meta so bodies can be compared.
func stripRequestID(body string) string {
	if before, _, found := strings.Cut(body, `"meta"`); found {
		return before
	}

	return body
}
