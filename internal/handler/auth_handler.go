package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"scorekeeper/internal/auth"
	apperr "scorekeeper/internal/errors"
	"scorekeeper/internal/service"
)

const bearerPrefix = "Bearer "

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued auth token.
type TokenResponse struct {
	AuthToken string `json:"authToken"`
}

// Login godoc
// @Summary Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} errors.LoginFailureResponse
// @Failure 500 {object} errors.InternalResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrLoginFailed) {
			return c.JSON(http.StatusUnauthorized, apperr.NewLoginFailureResponse())
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, apperr.NewInternalResponse())
	}

	return c.JSON(http.StatusOK, TokenResponse{AuthToken: token})
}

// Refresh godoc
// @Summary Exchange a valid token for a new one
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} errors.InternalResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	tokenString := strings.TrimPrefix(header, bearerPrefix)

	token, err := h.authService.Refresh(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, apperr.NewInternalResponse())
	}

	return c.JSON(http.StatusOK, TokenResponse{AuthToken: token})
}
