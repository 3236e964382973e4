package handlers

import (
	"net/http"
	"time"

	"group-ledger/internal/errors"
	"group-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminHandler exposes platform operations to users with the admin role.
type AdminHandler struct {
	recurring services.RecurringServiceInterface
	now       func() time.Time
}

func NewAdminHandler(recurring services.RecurringServiceInterface) *AdminHandler {
	return &AdminHandler{recurring: recurring, now: time.Now}
}

type processRecurringResponse struct {
	Executed    int       `json:"executed"`
	ProcessedAt time.Time `json:"processedAt"`
}

// ProcessRecurring runs one sweep of due obligations across all groups, the
// same pass the background processor makes. An optional ?at=RFC3339 replays
// the sweep as of that instant.
//
// @Summary Run the recurring sweep
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param at query string false "Sweep time (RFC3339)"
// @Success 200 {object} processRecurringResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid time"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Admin role required"
// @Router /admin/recurring/process [post]
func (h *AdminHandler) ProcessRecurring(c echo.Context) error {
	at := h.now().UTC()
	if raw := c.QueryParam("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("at must be an RFC3339 timestamp"))
		}
		at = parsed.UTC()
	}

	executed, err := h.recurring.ProcessDue(c.Request().Context(), at)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, processRecurringResponse{Executed: executed, ProcessedAt: at})
}
