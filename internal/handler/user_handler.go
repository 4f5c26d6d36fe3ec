package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "scorekeeper/internal/errors"
	"scorekeeper/internal/service"
)

// UserHandler handles user registration endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Registration payload: username, password, optional firstName/lastName"
// @Success 201 {object} model.SerializedUser
// @Failure 422 {object} errors.ValidationResponse
// @Failure 500 {object} errors.InternalResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.userService.Register(c.Request().Context(), payload)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, verr.ToResponse())
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, apperr.NewInternalResponse())
	}

	return c.JSON(http.StatusCreated, user)
}
