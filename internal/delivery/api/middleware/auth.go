package middleware

import (
	"log/slog"

	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/delivery/api/response"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// HeaderSessionToken carries a renewed session token after a refresh.
	HeaderSessionToken = "X-Session-Token"

	callerKey = "caller"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Mediator usecase.SessionMediator
	Logger   *slog.Logger
}

// AuthMiddleware guards protected routes with the session mediator.
type AuthMiddleware struct {
	mediator usecase.SessionMediator
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		mediator: params.Mediator,
		logger:   params.Logger,
	}
}

// Authenticate lets the request through only on an authorized decision. Every
// rejection gets the same 401 body; the reason is logged by the mediator.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		decision := m.mediator.Authorize(req.Context(), req.Header.Get(echo.HeaderAuthorization))
		if !decision.Authorized() {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		if decision.RenewedSessionToken != "" {
			c.Response().Header().Set(HeaderSessionToken, decision.RenewedSessionToken)
			deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Debug("Session token renewed",
				slog.String("identity_key", decision.Identity.Key),
			)
		}

		SetCaller(c, usecase.Caller{
			IdentityKey:      decision.Identity.Key,
			AccessCredential: decision.AccessCredential,
		})
		c.SetRequest(req.WithContext(deliverycontext.WithIdentityKey(req.Context(), decision.Identity.Key)))

		return next(c)
	}
}

// SetCaller stores the caller for the handlers down the chain.
func SetCaller(c echo.Context, caller usecase.Caller) {
	c.Set(callerKey, caller)
}

// GetCaller returns the caller stored by Authenticate.
func GetCaller(c echo.Context) (usecase.Caller, bool) {
	caller, ok := c.Get(callerKey).(usecase.Caller)
	if !ok || caller.IdentityKey == "" {
		return usecase.Caller{}, false
	}

	return caller, true
}
