package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "hafez-backend/cmd/api"
	activityDelivery "hafez-backend/internal/activity/delivery"
	activityRepo "hafez-backend/internal/activity/repository"
	activityUsecase "hafez-backend/internal/activity/usecase"
	analyticsDelivery "hafez-backend/internal/analytics/delivery"
	analyticsRepo "hafez-backend/internal/analytics/repository"
	analyticsUsecase "hafez-backend/internal/analytics/usecase"
	otpDelivery "hafez-backend/internal/otp/delivery"
	otpUsecase "hafez-backend/internal/otp/usecase"
	progressDelivery "hafez-backend/internal/progress/delivery"
	progressRepo "hafez-backend/internal/progress/repository"
	progressUsecase "hafez-backend/internal/progress/usecase"
	userRepo "hafez-backend/internal/user/repository"
	"hafez-backend/pkg/config"
	"hafez-backend/pkg/database"
	"hafez-backend/pkg/logger"
	"hafez-backend/pkg/sendgrid"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.SendGridAPIKey == "" {
		log.Warn("SENDGRID_API_KEY not set, /send-otp will report failures")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("closing database", "error", err)
		}
	}()

	// Run ordered schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", "error", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewUserRepository(db)
	progressRepository := progressRepo.NewProgressRepository(db)
	activityRepository := activityRepo.NewActivityRepository(db)
	analyticsRepository := analyticsRepo.NewAnalyticsRepository(db)

	// Initialize mail client
	mailClient := sendgrid.NewClient(cfg.SendGridAPIKey, cfg.SenderEmail, cfg.SenderName)

	// Initialize use cases
	otpUc := otpUsecase.NewOTPUsecase(mailClient)
	progressUc := progressUsecase.NewProgressUsecase(userRepository, progressRepository)
	activityUc := activityUsecase.NewActivityUsecase(activityRepository, userRepository)
	analyticsUc := analyticsUsecase.NewAnalyticsUsecase(analyticsRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(
		otpDelivery.NewOTPHandler(otpUc, log),
		progressDelivery.NewProgressHandler(progressUc, log),
		activityDelivery.NewActivityHandler(activityUc, log),
		analyticsDelivery.NewAnalyticsHandler(analyticsUc, log),
		cfg,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Engine(),
	}

	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("server shutdown", "error", err)
	}
}
