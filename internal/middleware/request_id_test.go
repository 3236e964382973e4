package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traceObservation struct {
	onEcho, onRequest, onResponse string
}

func observeTraceID(t *testing.T, incoming string) traceObservation {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var seen traceObservation
	h := RequestID()(func(c echo.Context) error {
		seen.onEcho = GetTraceID(c)
		seen.onRequest, _ = c.Request().Context().Value(services.TraceIDKey).(string)
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(c))
	seen.onResponse = rec.Header().Get(TraceIDHeader)
	return seen
}

func TestRequestID_KeepsWellFormedIncomingID(t *testing.T) {
	seen := observeTraceID(t, "checkout-7f3a.retry_2")

	assert.Equal(t, traceObservation{
		onEcho:     "checkout-7f3a.retry_2",
		onRequest:  "checkout-7f3a.retry_2",
		onResponse: "checkout-7f3a.retry_2",
	}, seen)
}

func TestRequestID_ReplacesUnacceptableIDs(t *testing.T) {
	for name, incoming := range map[string]string{
		"missing":    "",
		"oversized":  strings.Repeat("a", maxTraceIDLength+1),
		"whitespace": "two words",
		"non-ascii":  "trace-é",
		"control":    "line\x01break",
	} {
		t.Run(name, func(t *testing.T) {
			seen := observeTraceID(t, incoming)

			_, err := uuid.Parse(seen.onEcho)
			assert.NoError(t, err, "want a generated uuid, got %q", seen.onEcho)
			assert.Equal(t, seen.onEcho, seen.onRequest)
			assert.Equal(t, seen.onEcho, seen.onResponse)
		})
	}
}

func TestRequestID_MaxLengthAccepted(t *testing.T) {
	id := strings.Repeat("z", maxTraceIDLength)
	assert.Equal(t, id, observeTraceID(t, id).onEcho)
}

func TestGetTraceID_OutsideMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
	assert.Equal(t, "unknown", traceIDOrUnknown(c))
}
