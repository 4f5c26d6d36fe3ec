package main

import (
	"log"
	"net/http"

	_ "scorekeeper/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"scorekeeper/internal/auth"
	"scorekeeper/internal/cache"
	"scorekeeper/internal/config"
	"scorekeeper/internal/db"
	"scorekeeper/internal/handler"
	"scorekeeper/internal/model"
	"scorekeeper/internal/repository"
	"scorekeeper/internal/router"
	"scorekeeper/internal/service"
)

// @title Scorekeeper API
// @version 1.0
// @description Leaderboard API with user registration and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models. The unique index on users.username is
	// created here and backstops the registration uniqueness check.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Record{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	recordRepo := repository.NewRecordRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	passwordStrategy := auth.NewPasswordStrategy(userRepo)
	tokenStrategy := auth.NewTokenStrategy(jwtService)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(passwordStrategy, tokenStrategy, jwtService)
	recordService := service.NewRecordService(recordRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	recordHandler := handler.NewRecordHandler(recordService)

	// Register routes
	router.Register(e, cfg, userHandler, authHandler, recordHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
