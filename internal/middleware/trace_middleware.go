package middleware

import (
	"offerOptimizer/business/optimizer"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware threads a trace id through the request context so the
// business layer can correlate its logs with the HTTP request. An incoming
// X-Request-ID wins; otherwise a fresh uuid is generated. The chosen id is
// echoed back on the response.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(echo.HeaderXRequestID)
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := optimizer.WithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, tid)

			return next(c)
		}
	}
}
