package middleware

import (
	"strings"

	"group-ledger/internal/handlers"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = handlers.TraceIDContextKey

	maxTraceIDLength = 128
)

// RequestID tags each request with a trace id. A well-formed incoming
// X-Trace-ID is kept so callers can correlate across services; anything else
// is replaced by a fresh UUID. The id is echoed in the response header and
// stored on both the echo context and the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(TraceIDHeader)
			if !acceptableTraceID(id) {
				id = uuid.NewString()
			}

			c.Set(TraceIDContextKey, id)
			c.SetRequest(req.WithContext(services.WithTraceID(req.Context(), id)))
			c.Response().Header().Set(TraceIDHeader, id)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace id, or "" outside RequestID.
func GetTraceID(c echo.Context) string {
	id, _ := c.Get(TraceIDContextKey).(string)
	return id
}

func traceIDOrUnknown(c echo.Context) string {
	if id := GetTraceID(c); id != "" {
		return id
	}
	return "unknown"
}

// acceptableTraceID allows short visible-ASCII ids so a client cannot inject
// line breaks or huge values into logs.
func acceptableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	return !strings.ContainsFunc(id, func(r rune) bool { return r <= ' ' || r > '~' })
}
