package handlers

import (
	"log/slog"

	"group-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError or SendSystemError and return
// their result, so a failed request never falls through to echo's default
// error body.

// TraceIDContextKey holds the request's trace id; set by middleware.RequestID.
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps payloads that carry a message next to the data.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

func traceID(c echo.Context) string {
	if id, ok := c.Get(TraceIDContextKey).(string); ok && id != "" {
		return id
	}
	return "unknown"
}

// SendError writes code with its catalog status and message.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, traceID(c), opts...)
	return c.JSON(resp.Status(), resp)
}

// SendSystemError logs err and answers with an opaque SYSTEM_001 so storage
// and driver messages never reach the client.
func SendSystemError(c echo.Context, err error) error {
	id := traceID(c)
	slog.Default().ErrorContext(c.Request().Context(), "request failed",
		"trace_id", id,
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err)
	resp := errors.Internal(id)
	return c.JSON(resp.Status(), resp)
}
