package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"scorekeeper/internal/config"
	"scorekeeper/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	recordHandler *handler.RecordHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator for request DTOs
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users", userHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	// Refresh enforces the bearer credential itself via the token strategy.
	api.POST("/auth/refresh", authHandler.Refresh)

	records := api.Group("/records")

	// Leaderboard reads are public
	records.GET("/best", recordHandler.TopScores)
	records.GET("/times", recordHandler.BestTimes)
	records.GET("/latest", recordHandler.Latest)
	records.GET("/date/:username", recordHandler.UserHistory)

	// Record submission requires a valid JWT
	records.POST("", recordHandler.Create, echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
