package main

import (
	"net/http"
	"os"

	_ "tourboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tourboard/internal/auth"
	"tourboard/internal/cache"
	"tourboard/internal/config"
	"tourboard/internal/db"
	"tourboard/internal/handler"
	"tourboard/internal/logger"
	"tourboard/internal/model"
	"tourboard/internal/repository"
	"tourboard/internal/router"
	"tourboard/internal/service"
)

// @title Tourboard API
// @version 1.0
// @description Tourism analytics API with per-user LGA access control and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet; write straight to stderr and refuse to start
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.LGAAccess{},
		&model.TourismStat{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	lgaRepo := repository.NewLGAAccessRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	accessService := service.NewAccessService(userRepo, lgaRepo, statsRepo)
	authService := service.NewAuthService(userRepo, accessService, jwtService)
	userService := service.NewUserService(userRepo, lgaRepo)
	statsService := service.NewStatsService(statsRepo, lgaRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	accessHandler := handler.NewAccessHandler(accessService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		accessHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
