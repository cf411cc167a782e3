// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"docgate/config"
	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/delivery/api/response"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LoginFailurePath is where a failed provider callback lands.
const LoginFailurePath = "/auth/failure"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves the Google sign-in flow.
type AuthHandler struct {
	authUC      usecase.AuthUsecase
	frontendURL string
	logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:      params.AuthUC,
		frontendURL: strings.TrimRight(params.Config.HTTP.FrontendURL, "/"),
		logger:      params.Logger,
	}
}

// TokenClaimsResponse is the payload of a successful token validation.
type TokenClaimsResponse struct {
	IdentityKey string    `json:"identityKey"`
	Email       string    `json:"email,omitempty"`
	Name        string    `json:"name,omitempty"`
	Picture     string    `json:"picture,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// GoogleLogin redirects the browser to the Google consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	authURL, err := h.authUC.BeginLogin(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback finishes the sign-in and hands the session token to the frontend.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.CompleteLoginInput
	if err := c.Bind(&input); err != nil {
		return c.Redirect(http.StatusFound, LoginFailurePath)
	}

	output, err := h.authUC.CompleteLogin(ctx, &input)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Google sign-in failed", slog.Any("error", err))

		return c.Redirect(http.StatusFound, LoginFailurePath)
	}

	query := url.Values{"token": []string{output.SessionToken}}

	return c.Redirect(http.StatusFound, h.frontendURL+"/?"+query.Encode())
}

// LoginFailure reports a failed sign-in.
func (h *AuthHandler) LoginFailure(c echo.Context) error {
	return response.Unauthorized(c, "AUTHENTICATION_FAILED", "Google authentication failed")
}

// ValidateToken checks the bearer session token without refreshing anything.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	token, err := usecase.ParseBearer(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	claims, err := h.authUC.ValidateSessionToken(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := &TokenClaimsResponse{
		IdentityKey: claims.IdentityKey(),
		Email:       claims.Email,
		Name:        claims.Name,
		Picture:     claims.Picture,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return response.Success(c, http.StatusOK, out)
}
