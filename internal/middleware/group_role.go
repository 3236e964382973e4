package middleware

import (
	stderrors "errors"

	"group-ledger/internal/errors"
	"group-ledger/internal/handlers"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GroupQueryParam selects the current group for routes outside /groups/:groupId.
const GroupQueryParam = "group_id"

// RequireGroupRole resolves the :groupId path parameter and rejects callers
// whose role in that group is not one of roles. Must run after RequireAuth.
func RequireGroupRole(access services.GroupAccessServiceInterface, roles ...models.GroupRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(handlers.UserIDContextKey).(uuid.UUID)
			if !ok {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			groupID, err := uuid.Parse(c.Param("groupId"))
			if err != nil {
				return handlers.SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid group ID"))
			}

			granted, err := access.CheckRole(c.Request().Context(), groupID, userID, roles...)
			switch {
			case err == nil:
			case stderrors.Is(err, repositories.ErrGroupNotFound):
				return handlers.SendError(c, errors.GroupNotFound)
			case stderrors.Is(err, models.ErrNotAMember):
				return handlers.SendError(c, errors.GroupNotAMember)
			case stderrors.Is(err, models.ErrInsufficientRole):
				return handlers.SendError(c, errors.GroupInsufficientRole)
			default:
				return handlers.SendSystemError(c, err)
			}

			setGroupContext(c, granted)
			c.SetRequest(c.Request().WithContext(services.WithResolvedAccess(c.Request().Context(), userID, granted)))
			return next(c)
		}
	}
}

// AttachGroupContext adds the group named by ?group_id to the context when
// the caller belongs to it. It never rejects a request.
func AttachGroupContext(access services.GroupAccessServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.QueryParam(GroupQueryParam)
			if raw == "" {
				return next(c)
			}
			userID, ok := c.Get(handlers.UserIDContextKey).(uuid.UUID)
			if !ok {
				return next(c)
			}
			groupID, err := uuid.Parse(raw)
			if err != nil {
				return next(c)
			}

			if granted := access.AttachContextIfMember(c.Request().Context(), groupID, userID); granted.IsMember() {
				setGroupContext(c, granted)
			}
			return next(c)
		}
	}
}

func setGroupContext(c echo.Context, access *models.GroupAccess) {
	c.Set(handlers.GroupContextKey, access.Group)
	c.Set(handlers.GroupRoleContextKey, access.Role)
}
