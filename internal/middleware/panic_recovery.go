package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"group-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response and logs the
// stack. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				switch {
				case r == nil:
					return
				case r == http.ErrAbortHandler:
					panic(r)
				}

				req := c.Request()
				traceID := traceIDOrUnknown(c)
				logger.ErrorContext(req.Context(), "handler panicked",
					slog.String("trace_id", traceID),
					slog.String("method", req.Method),
					slog.String("path", req.URL.Path),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)

				err = nil
				if c.Response().Committed {
					return
				}
				resp := errors.Internal(traceID)
				if sendErr := c.JSON(resp.Status(), resp); sendErr != nil {
					logger.ErrorContext(req.Context(), "writing panic response", "trace_id", traceID, "error", sendErr)
				}
			}()
			return next(c)
		}
	}
}
