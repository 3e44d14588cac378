package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khehtisham/magento2-textyess-integration/internal/application/payload"
	"github.com/khehtisham/magento2-textyess-integration/internal/application/webhook"
	"github.com/khehtisham/magento2-textyess-integration/internal/infrastructure/config"
	"github.com/khehtisham/magento2-textyess-integration/internal/infrastructure/countries"
	"github.com/khehtisham/magento2-textyess-integration/internal/infrastructure/gateway"
	"github.com/khehtisham/magento2-textyess-integration/internal/infrastructure/logger"
	"github.com/khehtisham/magento2-textyess-integration/internal/interfaces/http/handler"
	"github.com/khehtisham/magento2-textyess-integration/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire the webhook pipeline
	settings := config.NewProvider(cfg)
	builder := payload.NewBuilder(countries.NewResolver())
	notifier := gateway.NewNotifier(settings, log)
	service := webhook.NewService(builder, notifier, settings, log)

	engine := router.New(handler.NewEventHandler(service, log), log)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.Bool("integration_enabled", cfg.TextYess.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
