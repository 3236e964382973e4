package handlers

import (
	"errors"
	"strconv"

	apierrors "group-ledger/internal/errors"
	"group-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized means no authenticated user is attached to the request.
var ErrUnauthorized = errors.New("unauthorized")

// Keys under which the auth and group middleware store request state.
const (
	UserIDContextKey    = "user_id"
	UserRoleContextKey  = "user_role"
	TokenIDContextKey   = "token_jti"
	GroupContextKey     = "group"
	GroupRoleContextKey = "group_role"
)

func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

// requestActor describes a caller that may not be authenticated yet.
// The address honours X-Forwarded-For and X-Real-IP through echo.
func requestActor(c echo.Context) models.Actor {
	return models.Actor{IPAddress: c.RealIP(), UserAgent: c.Request().UserAgent()}
}

func actorFromContext(c echo.Context) (models.Actor, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return models.Actor{}, err
	}
	actor := requestActor(c)
	actor.UserID = userID
	return actor, nil
}

// groupAccessFromContext returns what RequireGroupRole or AttachGroupContext
// attached, or nil.
func groupAccessFromContext(c echo.Context) *models.GroupAccess {
	group, ok := c.Get(GroupContextKey).(*models.Group)
	if !ok || group == nil {
		return nil
	}
	role, _ := c.Get(GroupRoleContextKey).(models.GroupRole)
	return &models.GroupAccess{Group: group, Role: role}
}

func sendInvalidBody(c echo.Context) error {
	return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
}

func sendInvalidID(c echo.Context, what string) error {
	return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid "+what))
}

// getIntParam reads an integer query parameter, falling back on absence or
// garbage.
func getIntParam(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return v
}
