package handlers

import (
	"net/http"
	"time"

	"group-ledger/internal/errors"
	"group-ledger/internal/events"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// BreakerState reports the state of the event publisher circuit
type BreakerState interface {
	State() events.CircuitState
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db     *gorm.DB
	events BreakerState
}

// NewHealthCheckHandler creates a new health check handler. eventState may be
// nil when no broker is configured.
func NewHealthCheckHandler(db *gorm.DB, eventState BreakerState) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, events: eventState}
}

// HealthCheck reports database connectivity and the event publisher state.
// A broken broker degrades the service but does not make it unavailable.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,events=string} "Service is healthy or degraded"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	body := map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
		"events": "disabled",
	}
	if h.events != nil {
		state := h.events.State()
		body["events"] = state.String()
		if state == events.StateOpen {
			body["status"] = "degraded"
		}
	}

	return c.JSON(http.StatusOK, body)
}
