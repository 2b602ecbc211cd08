package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"budgetly/internal/backend"
	"budgetly/internal/config"
	"budgetly/internal/i18n"
	"budgetly/internal/logger"
	"budgetly/internal/router"
	"budgetly/internal/services"
	"budgetly/internal/validator"

	_ "budgetly/internal/docs" // Import swagger docs
)

// @title           Budgetly API
// @version         1.0
// @description     Budgetly tracks a single budget period, an append-only transaction log and pending bills, and surfaces advisory notifications.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-API-Key
// @description Administrative API key.

const shutdownTimeout = 30 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opened, err := backend.Open(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", appConfig.StorageBackend, err)
	}
	defer opened.Close()

	core, err := services.NewCore(opened.Gateway, opened.Notifier)
	if err != nil {
		return fmt.Errorf("failed to load saved state: %w", err)
	}

	catalog, err := i18n.Load(appConfig.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("failed to load message catalog: %w", err)
	}

	validator.Register()
	handler := router.New(core, catalog, router.Options{
		AdminAPIKey: appConfig.AdminAPIKey,
		Swagger:     appConfig.Env != "production",
	})

	srv := &http.Server{
		Addr:           ":" + appConfig.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Budgetly server on port %s (backend: %s)", appConfig.Port, appConfig.StorageBackend)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped gracefully")
	return nil
}
