package handlers

import (
	"net/http"
	"strconv"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/errors"
	"group-ledger/internal/models"
	"group-ledger/internal/schedule"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RecurringHandler handles recurring obligation requests inside a group
type RecurringHandler struct {
	recurringService services.RecurringServiceInterface
	now              func() time.Time
}

// NewRecurringHandler creates a new recurring obligation handler
func NewRecurringHandler(recurringService services.RecurringServiceInterface) *RecurringHandler {
	return &RecurringHandler{
		recurringService: recurringService,
		now:              time.Now,
	}
}

func (h *RecurringHandler) response(o *models.RecurringObligation, now time.Time) dto.RecurringResponse {
	var nextRun *time.Time
	if next, ok := schedule.NextRun(o, now); ok {
		nextRun = &next
	}
	return dto.NewRecurringResponse(o, nextRun, schedule.IsDue(o, now))
}

// CreateRecurring stores a recurring obligation template
// @Summary Create recurring obligation
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param request body dto.CreateRecurringRequest true "Obligation"
// @Success 201 {object} dto.RecurringResponse
// @Failure 400 {object} errors.ErrorResponse "RECURRING_004 - Invalid frequency or TRANSACTION_002 - Shares do not add up"
// @Failure 403 {object} errors.ErrorResponse "GROUP_003 - Viewers cannot write"
// @Router /groups/{groupId}/recurring [post]
func (h *RecurringHandler) CreateRecurring(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	var req dto.CreateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	obligation, err := h.recurringService.Create(c.Request().Context(), actor, groupID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, h.response(obligation, h.now().UTC()))
}

// ListRecurring lists the group's obligations with their next run
// @Summary List recurring obligations
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param active query bool false "Only active obligations"
// @Success 200 {array} dto.RecurringResponse
// @Router /groups/{groupId}/recurring [get]
func (h *RecurringHandler) ListRecurring(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	activeOnly := false
	if v := c.QueryParam("active"); v != "" {
		activeOnly, err = strconv.ParseBool(v)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("active must be true or false"))
		}
	}

	obligations, err := h.recurringService.List(c.Request().Context(), userID, groupID, activeOnly)
	if err != nil {
		return sendServiceError(c, err)
	}

	now := h.now().UTC()
	resp := make([]dto.RecurringResponse, 0, len(obligations))
	for i := range obligations {
		resp = append(resp, h.response(&obligations[i], now))
	}
	return c.JSON(http.StatusOK, resp)
}

// ListDue lists obligations whose next occurrence has arrived
// @Summary List due obligations
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {array} dto.RecurringResponse
// @Router /groups/{groupId}/recurring/due [get]
func (h *RecurringHandler) ListDue(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	due, err := h.recurringService.ListDue(c.Request().Context(), userID, groupID, h.now().UTC())
	if err != nil {
		return sendServiceError(c, err)
	}

	resp := make([]dto.RecurringResponse, 0, len(due))
	for i := range due {
		nextRun := due[i].NextRun
		resp = append(resp, dto.NewRecurringResponse(&due[i].Obligation, &nextRun, true))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetRecurring returns one obligation
// @Summary Get recurring obligation
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param id path string true "Obligation ID"
// @Success 200 {object} dto.RecurringResponse
// @Failure 404 {object} errors.ErrorResponse "RECURRING_001 - Not found"
// @Router /groups/{groupId}/recurring/{id} [get]
func (h *RecurringHandler) GetRecurring(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendInvalidID(c, "obligation ID")
	}

	obligation, err := h.recurringService.Get(c.Request().Context(), userID, groupID, id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, h.response(obligation, h.now().UTC()))
}

// UpdateRecurring replaces the editable fields of an obligation
// @Summary Update recurring obligation
// @Description The request version must equal the stored version.
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param id path string true "Obligation ID"
// @Param request body dto.UpdateRecurringRequest true "Obligation"
// @Success 200 {object} dto.RecurringResponse
// @Failure 409 {object} errors.ErrorResponse "RECURRING_006 - Modified concurrently"
// @Router /groups/{groupId}/recurring/{id} [put]
func (h *RecurringHandler) UpdateRecurring(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendInvalidID(c, "obligation ID")
	}

	var req dto.UpdateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	obligation, err := h.recurringService.Update(c.Request().Context(), actor, groupID, id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, h.response(obligation, h.now().UTC()))
}

// DeleteRecurring removes an obligation. Transactions it spawned are kept.
// @Summary Delete recurring obligation
// @Tags Recurring
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param id path string true "Obligation ID"
// @Success 204
// @Router /groups/{groupId}/recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendInvalidID(c, "obligation ID")
	}

	if err := h.recurringService.Delete(c.Request().Context(), actor, groupID, id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ExecuteRecurring spawns the transaction for the current occurrence
// @Summary Execute recurring obligation
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param id path string true "Obligation ID"
// @Success 201 {object} dto.ExecuteRecurringResponse
// @Failure 409 {object} errors.ErrorResponse "RECURRING_003 - Already executed"
// @Failure 422 {object} errors.ErrorResponse "RECURRING_002 - Not due or RECURRING_005 - Inactive"
// @Router /groups/{groupId}/recurring/{id}/execute [post]
func (h *RecurringHandler) ExecuteRecurring(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendInvalidID(c, "obligation ID")
	}

	now := h.now().UTC()
	obligation, transaction, err := h.recurringService.Execute(c.Request().Context(), actor, groupID, id, now)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ExecuteRecurringResponse{
		Recurring:   h.response(obligation, now),
		Transaction: dto.NewTransactionResponse(transaction),
	})
}
