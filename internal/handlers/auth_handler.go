package handlers

import (
	"net/http"
	"strings"

	"group-ledger/internal/dto"
	"group-ledger/internal/errors"
	"group-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the public /auth routes.
type AuthHandler struct {
	auth services.AuthServiceInterface
}

func NewAuthHandler(auth services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates an account
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 409 {object} errors.ErrorResponse "AUTH_007"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), &req, requestActor(c))
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewUserProfileResponse(user),
		Message: "User registered successfully",
	})
}

// Login exchanges credentials for a token pair
// @Summary Login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "AUTH_006"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.auth.Login(c.Request().Context(), &req, requestActor(c))
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken rotates a session
// @Summary Refresh tokens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_004"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.auth.RefreshTokens(c.Request().Context(), req.RefreshToken, requestActor(c))
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// Logout revokes the presented access token and the caller's sessions
// @Summary Logout
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 or AUTH_004"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return SendError(c, errors.AuthMissingToken)
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" || strings.ContainsRune(token, ' ') {
		return SendError(c, errors.AuthInvalidTokenFormat)
	}

	// An unusable token is already logged out.
	_ = h.auth.Logout(c.Request().Context(), token, requestActor(c))

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Logout successful"})
}
