package handlers

import (
	stderrors "errors"
	"net/http"

	"group-ledger/internal/dto"
	"group-ledger/internal/errors"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// MeHandler serves the authenticated user's own view
type MeHandler struct {
	authService  services.AuthServiceInterface
	groupService services.GroupServiceInterface
	auditService services.AuditServiceInterface
}

// NewMeHandler creates a new me handler
func NewMeHandler(
	authService services.AuthServiceInterface,
	groupService services.GroupServiceInterface,
	auditService services.AuditServiceInterface,
) *MeHandler {
	return &MeHandler{
		authService:  authService,
		groupService: groupService,
		auditService: auditService,
	}
}

// GetMe returns the profile, the user's groups and, when group_id names a
// group the user belongs to, that group. A foreign group_id is ignored.
// @Summary Current user
// @Tags Me
// @Security BearerAuth
// @Produce json
// @Param group_id query string false "Group to attach when the user is a member"
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /me [get]
func (h *MeHandler) GetMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrUserNotFound) {
			return SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User no longer exists"))
		}
		return SendSystemError(c, err)
	}

	groups, err := h.groupService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.MeResponse{
		User:   dto.NewUserProfileResponse(user),
		Groups: dto.NewGroupSummaries(groups, userID),
	}
	if access := groupAccessFromContext(c); access != nil {
		current := dto.NewGroupResponse(access.Group, access.Role)
		resp.CurrentGroup = &current
	}

	return c.JSON(http.StatusOK, resp)
}

// GetMyActivity pages through the audit entries the user produced
// @Summary Current user's activity
// @Tags Me
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ActivityListResponse
// @Router /me/activity [get]
func (h *MeHandler) GetMyActivity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset, limit := pageParams(c)
	logs, total, err := h.auditService.UserActivity(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewActivityListResponse(logs, total, offset, limit))
}

// pageParams reads offset and limit, clamping them to the page bounds.
func pageParams(c echo.Context) (int, int) {
	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := getIntParam(c, "limit", services.DefaultPageLimit)
	if limit <= 0 {
		limit = services.DefaultPageLimit
	}
	if limit > services.MaxPageLimit {
		limit = services.MaxPageLimit
	}
	return offset, limit
}
