package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-registration-service/internal/config"
	"user-registration-service/internal/database"
	"user-registration-service/internal/email"
	"user-registration-service/internal/handler"
	"user-registration-service/internal/i18n"
	"user-registration-service/internal/repository"
	"user-registration-service/internal/security"
	"user-registration-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Локализация
	translator, err := i18n.NewTranslator()
	if err != nil {
		logger.Fatalf("Failed to load message catalogs: %v", err)
	}

	// Репозиторий и внешние шлюзы
	userRepo := repository.NewUserRepository(db)
	mailer := email.NewSMTPMailer(cfg)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := security.NewHexTokenGenerator()

	// Use Cases
	validator := usecase.NewRegistrationValidator(userRepo)
	registrationUC := usecase.NewRegistrationUseCase(userRepo, mailer, hasher, tokens, validator)
	activationUC := usecase.NewActivationUseCase(userRepo)
	listingUC := usecase.NewListingUseCase(userRepo)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	userHandler := handler.NewUserHandler(registrationUC, activationUC, listingUC, translator, logger)
	handler.RegisterRoutes(e, userHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
