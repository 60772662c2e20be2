package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/middleware"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/notify"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/router"
	"github.com/iscanabdulhalik/swappy-backend-sub001/pkg/config"
	"github.com/iscanabdulhalik/swappy-backend-sub001/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := config.InitLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(db)

	// Notification side channel: best-effort, outside every transaction
	sink := notify.NewLogSink(logger)
	dispatcher := notify.NewDispatcher(sink, cfg.NotifyQueueSize, logger)
	defer dispatcher.Close(10 * time.Second)

	authenticator := middleware.NewJWTAuthenticator(cfg.JWTSecret)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, dispatcher, authenticator, logger); err != nil {
		logger.Fatal("failed to set up routes", zap.Error(err))
	}

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			logger.Info("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
