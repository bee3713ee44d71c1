package middleware

import (
	"gameReco/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderTraceID = "X-Trace-Id"

// TraceID reuses the caller's X-Trace-Id or mints one, echoes it back and
// puts it on the request context for service logs.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(HeaderTraceID)
			if tid == "" {
				tid = uuid.NewString()
			}

			c.Response().Header().Set(HeaderTraceID, tid)
			ctx := recommend.WithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
