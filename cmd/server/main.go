package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/immunika/server/adapters/postgres"
	"github.com/immunika/server/internal/api"
	"github.com/immunika/server/internal/auth"
	"github.com/immunika/server/internal/config"
	"github.com/immunika/server/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("failed to create upload directory", zap.Error(err))
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize adapters
	userRepo := postgres.NewUserRepository(db, logger)
	vaccineRepo := postgres.NewVaccineRepository(db, logger)
	calendarRepo := postgres.NewCalendarRepository(db, logger)
	vaccinationRepo := postgres.NewVaccinationRepository(db, logger)
	reservationRepo := postgres.NewReservationRepository(db, logger)

	tokens := auth.NewJWT([]byte(cfg.JWTSecret))

	// Initialize usecase services
	userService := usecase.NewUserService(userRepo, tokens, logger)
	vaccineService := usecase.NewVaccineService(vaccineRepo, logger)
	calendarService := usecase.NewCalendarService(calendarRepo, vaccineRepo, logger)
	vaccinationService := usecase.NewVaccinationService(vaccinationRepo, userRepo, vaccineRepo, logger)
	reservationService := usecase.NewReservationService(reservationRepo, userRepo, calendarRepo, logger)

	// Initialize API routes
	api.InitRoutes(e, api.Handlers{
		Users:        api.NewUserHandler(userService, cfg.UploadDir, logger),
		Vaccines:     api.NewVaccineHandler(vaccineService, logger),
		Calendar:     api.NewCalendarHandler(calendarService, logger),
		Vaccinations: api.NewVaccinationHandler(vaccinationService, logger),
		Reservations: api.NewReservationHandler(reservationService, logger),
	}, tokens, cfg.UploadDir, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
