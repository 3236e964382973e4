package handlers

import (
	"net/http"
	"time"

	"group-ledger/internal/errors"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	groupService       services.GroupServiceInterface
	transactionService services.TransactionServiceInterface
	generator          services.DemoDataGeneratorInterface
	now                func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	groupService services.GroupServiceInterface,
	transactionService services.TransactionServiceInterface,
	generator services.DemoDataGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		groupService:       groupService,
		transactionService: transactionService,
		generator:          generator,
		now:                time.Now,
	}
}

// SeedGroup fills a group with generated transactions split between its
// members. Entries go through the regular transaction service, so the caller
// needs a writer role.
//
// Method: POST /api/v1/dev/groups/:groupId/seed
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 1000)
//   - days: Number of days of history to generate (default: 90, max: 365)
func (h *DevHandler) SeedGroup(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	ctx := c.Request().Context()
	access, err := h.groupService.Get(ctx, groupID, actor.UserID)
	if err != nil {
		return sendServiceError(c, err)
	}

	count := clampInt(getIntParam(c, "count", 100), 1, 1000)
	days := clampInt(getIntParam(c, "days", 90), 1, 365)

	endDate := h.now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	members := make([]uuid.UUID, 0, len(access.Group.Members))
	for _, m := range access.Group.Members {
		members = append(members, m.UserID)
	}

	created := 0
	for _, req := range h.generator.Generate(members, startDate, endDate, count) {
		if _, err := h.transactionService.Create(ctx, actor, groupID, &req); err != nil {
			if created == 0 {
				return sendServiceError(c, err)
			}
			break
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":             "test data generated successfully",
		"transactionsCreated": created,
		"groupId":             groupID,
		"dateRange": map[string]string{
			"start": startDate.Format(time.RFC3339),
			"end":   endDate.Format(time.RFC3339),
		},
	})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
