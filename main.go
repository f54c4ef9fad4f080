package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AsbestosServicesHampshire/ash-backend/config"
	"github.com/AsbestosServicesHampshire/ash-backend/handlers"
	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/AsbestosServicesHampshire/ash-backend/router"
	"github.com/AsbestosServicesHampshire/ash-backend/services"
	"github.com/gin-gonic/gin"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Server.Version = version

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	emailService := services.NewEmailService(&cfg.Email, &cfg.Business)
	enquiryService := services.NewEnquiryService(emailService)
	healthService := services.NewHealthService(version)

	// Router setup
	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		EnquiryHandler: handlers.NewEnquiryHandler(enquiryService),
		PageHandler:    handlers.NewPageHandler(&cfg.Business, &cfg.Upload),
		HealthHandler:  handlers.NewHealthHandler(healthService),
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
}
