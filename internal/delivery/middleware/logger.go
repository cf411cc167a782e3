package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"docgate/config"
	deliverycontext "docgate/internal/delivery/context"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/errors"

	"github.com/labstack/echo/v4"
)

// RequestLogger writes one access line per request through the request-scoped
// logger. Outside debug mode only 4xx and 5xx responses are written.
type RequestLogger struct {
	logger *slog.Logger
	debug  bool
}

func NewRequestLogger(logger *slog.Logger, cfg *config.Config) *RequestLogger {
	return &RequestLogger{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *RequestLogger) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := responseStatus(c, err)
		level := levelForStatus(status)
		if !m.debug && level < slog.LevelWarn {
			return err
		}

		req := c.Request()
		// The query string stays out: the login callback carries the authorization code there.
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
			slog.String("path", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if identityKey := deliverycontext.GetIdentityKey(req.Context()); identityKey != "" {
			attrs = append(attrs, slog.String("identity_key", identityKey))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
			LogAttrs(req.Context(), level, "HTTP request", attrs...)

		return err
	}
}

// responseStatus predicts the status the error handler will write for err when
// the handler has not answered yet.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
