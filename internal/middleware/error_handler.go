package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	apierrors "group-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorHandler is the echo.HTTPErrorHandler for errors handlers return
// instead of writing a response themselves.
type ErrorHandler struct {
	logger      *slog.Logger
	errorsTotal *prometheus.CounterVec
}

// NewErrorHandler registers api_errors_total on reg.
func NewErrorHandler(logger *slog.Logger, reg prometheus.Registerer) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		errorsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Error responses by code, route and status.",
		}, []string{"code", "endpoint", "status"}),
	}
}

func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := traceIDOrUnknown(c)
	resp, status := resolveError(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	req := c.Request()
	h.logger.LogAttrs(req.Context(), level, "request failed",
		slog.String("trace_id", traceID),
		slog.String("code", resp.Error.Code),
		slog.Int("status", status),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("error", err),
	)
	h.errorsTotal.WithLabelValues(resp.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if req.Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, resp)
	}
	if err != nil {
		h.logger.Error("writing error response", "trace_id", traceID, "error", err)
	}
}

// resolveError turns err into the body and status sent to the client.
// Anything that is not an echo or validator error is hidden behind SYSTEM_001.
func resolveError(err error, traceID string) (*apierrors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code := codeForStatus(httpErr.Code)
		var opts []apierrors.ErrorOption
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			opts = append(opts, apierrors.WithMessage(msg))
		}
		return apierrors.NewErrorResponse(code, traceID, opts...), httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = describeFieldError(fe)
		}
		return apierrors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	resp := apierrors.Internal(traceID)
	return resp, resp.Status()
}

var statusCodes = map[int]apierrors.ErrorCode{
	http.StatusBadRequest:            apierrors.ValidationGeneral,
	http.StatusMethodNotAllowed:      apierrors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: apierrors.ValidationGeneral,
	http.StatusUnsupportedMediaType:  apierrors.ValidationGeneral,
	http.StatusUnprocessableEntity:   apierrors.ValidationGeneral,
	http.StatusUnauthorized:          apierrors.AuthMissingToken,
	http.StatusForbidden:             apierrors.AuthInsufficientPermission,
	http.StatusNotFound:              apierrors.SystemRouteNotFound,
	http.StatusTooManyRequests:       apierrors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   apierrors.SystemInternalError,
	http.StatusServiceUnavailable:    apierrors.SystemServiceUnavailable,
}

func codeForStatus(status int) apierrors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return apierrors.SystemUnexpectedError
}

// fieldMessages covers the tags whose message does not depend on the param.
var fieldMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email address",
	"money":          "must be a non-negative amount with at most 2 decimal places",
	"positive_money": "must be greater than 0 with at most 2 decimal places",
	"percent":        "must be between 0 and 100",
	"currency":       "must be a 3-letter ISO 4217 currency code",
	"entry_type":     "must be income or expense",
	"frequency":      "must be one of: daily, weekly, biweekly, monthly, quarterly, yearly",
	"group_role":     "must be one of: owner, editor, viewer",
	"member_role":    "must be editor or viewer",
	"invite_key":     "must be 8 characters of A-Z and 0-9",
}

func describeFieldError(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Tag()]; ok {
		return msg
	}

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters long"
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return fmt.Sprintf("failed the %q rule", fe.Tag())
}
