package middleware

import (
	"log/slog"

	deliverycontext "docgate/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestID tags each request with an ID, echoes it in X-Request-Id and puts a
// logger carrying that ID into the request context for the service layer.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := deliverycontext.NormalizeRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))

			deliverycontext.SetRequestID(c, requestID)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			ctx := deliverycontext.WithRequestID(req.Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
