package middleware

import (
	stderrors "errors"
	"slices"

	"group-ledger/internal/errors"
	"group-ledger/internal/handlers"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth accepts only unexpired, unrevoked access tokens and attaches the
// caller's user id, platform role and token id to the context.
func RequireAuth(tokens services.TokenServiceInterface, revoked repositories.BlacklistedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}
			raw, err := tokens.BearerToken(header)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokens.ParseAccessToken(raw)
			if stderrors.Is(err, services.ErrExpiredToken) {
				return handlers.SendError(c, errors.AuthExpiredToken)
			}
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			// a failed lookup rejects the request rather than trusting the token
			isRevoked, err := revoked.IsBlacklisted(claims.ID)
			if err != nil {
				return handlers.SendSystemError(c, err)
			}
			if isRevoked {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token has been revoked"))
			}

			userID, _ := claims.UserID()
			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.UserRoleContextKey, claims.Role)
			c.Set(handlers.TokenIDContextKey, claims.ID)
			return next(c)
		}
	}
}

// RequireRole gates a route on the platform role carried in the access token.
// Group roles are checked by RequireGroupRole instead.
func RequireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(handlers.UserRoleContextKey).(string)
			if !ok || role == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User role not found in token"))
			}
			if !slices.Contains(allowed, role) {
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
