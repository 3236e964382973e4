package handlers

import (
	"net/http"

	"group-ledger/internal/dto"
	"group-ledger/internal/errors"
	"group-ledger/internal/models"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GroupHandler handles group and membership requests
type GroupHandler struct {
	groupService services.GroupServiceInterface
	auditService services.AuditServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService services.GroupServiceInterface, auditService services.AuditServiceInterface) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		auditService: auditService,
	}
}

// ListGroups returns every group the caller belongs to
// @Summary List my groups
// @Tags Groups
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.GroupSummary
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	groups, err := h.groupService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGroupSummaries(groups, userID))
}

// CreateGroup creates a group owned by the caller
// @Summary Create group
// @Tags Groups
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Group settings"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 503 {object} errors.ErrorResponse "GROUP_006 - Invite key generation exhausted"
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	group, err := h.groupService.Create(c.Request().Context(), actor, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewGroupResponse(group, models.GroupRoleOwner))
}

// JoinGroup adds the caller to the group holding the invite key
// @Summary Join group by invite key
// @Tags Groups
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.JoinGroupRequest true "Invite key"
// @Success 200 {object} dto.GroupResponse
// @Failure 404 {object} errors.ErrorResponse "GROUP_005 - Invalid invite key"
// @Failure 409 {object} errors.ErrorResponse "GROUP_004 - Already a member"
// @Router /groups/join [post]
func (h *GroupHandler) JoinGroup(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.JoinGroupRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	group, err := h.groupService.Join(c.Request().Context(), actor, req.InviteKey)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGroupResponse(group, models.GroupRoleViewer))
}

// GetGroup returns a group with its members. Only owners see the invite key.
// @Summary Get group
// @Tags Groups
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 403 {object} errors.ErrorResponse "GROUP_002 - Not a member"
// @Failure 404 {object} errors.ErrorResponse "GROUP_001 - Group not found"
// @Router /groups/{groupId} [get]
func (h *GroupHandler) GetGroup(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	access, err := h.groupService.Get(c.Request().Context(), groupID, userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGroupResponse(access.Group, access.Role))
}

// UpdateGroup replaces the group settings
// @Summary Update group
// @Tags Groups
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param request body dto.UpdateGroupRequest true "Group settings"
// @Success 200 {object} dto.GroupResponse
// @Failure 403 {object} errors.ErrorResponse "GROUP_003 - Owner only"
// @Router /groups/{groupId} [put]
func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	var req dto.UpdateGroupRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	group, err := h.groupService.Update(c.Request().Context(), actor, groupID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGroupResponse(group, models.GroupRoleOwner))
}

// DeleteGroup soft-deletes the group
// @Summary Delete group
// @Tags Groups
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse "GROUP_003 - Owner only"
// @Router /groups/{groupId} [delete]
func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	if err := h.groupService.Delete(c.Request().Context(), actor, groupID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RegenerateInviteKey replaces the invite key; the old key stops working
// @Summary Regenerate invite key
// @Tags Groups
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} dto.InviteKeyResponse
// @Failure 503 {object} errors.ErrorResponse "GROUP_006 - Invite key generation exhausted"
// @Router /groups/{groupId}/invite-key [post]
func (h *GroupHandler) RegenerateInviteKey(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	key, err := h.groupService.RegenerateInviteKey(c.Request().Context(), actor, groupID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.InviteKeyResponse{InviteKey: key})
}

// TransferOwnership hands the group to another member
// @Summary Transfer ownership
// @Tags Groups
// @Security BearerAuth
// @Accept json
// @Param groupId path string true "Group ID"
// @Param request body dto.TransferOwnershipRequest true "New owner"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} errors.ErrorResponse "GROUP_008 - New owner must be another member"
// @Router /groups/{groupId}/transfer-ownership [post]
func (h *GroupHandler) TransferOwnership(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	var req dto.TransferOwnershipRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.groupService.TransferOwnership(c.Request().Context(), actor, groupID, req.NewOwnerID); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Ownership transferred"})
}

// LeaveGroup removes the caller from the group
// @Summary Leave group
// @Tags Groups
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse "GROUP_007 - The owner cannot leave"
// @Router /groups/{groupId}/leave [post]
func (h *GroupHandler) LeaveGroup(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	if err := h.groupService.Leave(c.Request().Context(), actor, groupID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddMember enrolls a registered user by email
// @Summary Add member
// @Tags Members
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param request body dto.AddMemberRequest true "Member email and role"
// @Success 201 {object} dto.MemberResponse
// @Failure 409 {object} errors.ErrorResponse "GROUP_004 - Already a member"
// @Router /groups/{groupId}/members [post]
func (h *GroupHandler) AddMember(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	var req dto.AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	member, err := h.groupService.AddMember(c.Request().Context(), actor, groupID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	resp := dto.MemberResponse{
		UserID:   member.UserID,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
	if member.User != nil {
		resp.Email = member.User.Email
		resp.Name = member.User.FullName()
	}
	return c.JSON(http.StatusCreated, resp)
}

// ChangeMemberRole switches a member between editor and viewer
// @Summary Change member role
// @Tags Members
// @Security BearerAuth
// @Accept json
// @Param groupId path string true "Group ID"
// @Param userId path string true "Member user ID"
// @Param request body dto.ChangeRoleRequest true "New role"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} errors.ErrorResponse "GROUP_007 - The owner cannot be demoted"
// @Router /groups/{groupId}/members/{userId} [put]
func (h *GroupHandler) ChangeMemberRole(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return sendInvalidID(c, "user ID")
	}

	var req dto.ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	role, err := models.ParseGroupRole(req.Role)
	if err != nil {
		return sendServiceError(c, err)
	}

	if err := h.groupService.ChangeMemberRole(c.Request().Context(), actor, groupID, memberID, role); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Role updated"})
}

// RemoveMember drops a member from the group
// @Summary Remove member
// @Tags Members
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param userId path string true "Member user ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse "GROUP_007 - The owner cannot be removed"
// @Router /groups/{groupId}/members/{userId} [delete]
func (h *GroupHandler) RemoveMember(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return sendInvalidID(c, "user ID")
	}

	if err := h.groupService.RemoveMember(c.Request().Context(), actor, groupID, memberID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetActivity pages through the group's audit trail. Mounted behind
// RequireGroupRole, which has already checked membership.
// @Summary Group activity
// @Tags Groups
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ActivityListResponse
// @Router /groups/{groupId}/activity [get]
func (h *GroupHandler) GetActivity(c echo.Context) error {
	access := groupAccessFromContext(c)
	if access == nil {
		return SendError(c, errors.GroupNotAMember)
	}

	offset, limit := pageParams(c)
	logs, total, err := h.auditService.GroupActivity(access.GroupID(), offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewActivityListResponse(logs, total, offset, limit))
}
