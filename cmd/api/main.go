package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopfront/internal/auth"
	"shopfront/internal/config"
	"shopfront/internal/database"
	"shopfront/internal/handler"
	"shopfront/internal/repository"
	"shopfront/internal/router"
	"shopfront/internal/seed"
	"shopfront/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting shopfront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize storage
	var productRepo repository.ProductRepository
	var orderRepo repository.OrderRepository

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		productRepo = repository.NewProductRepository(pool, logger)
		orderRepo = repository.NewOrderRepository(pool, logger)

	default:
		store := repository.NewMemoryStore(logger)
		productRepo = store
		orderRepo = store
		logger.Info().Msg("using in-memory store")
	}

	// Seed the catalogue when a seed source is configured
	if cfg.Seed.Path != "" || cfg.Seed.S3Enabled {
		var loader seed.Loader
		if cfg.Seed.S3Enabled {
			s3Loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Key, cfg.Seed.S3Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 seed loader, falling back to local file")
				loader = seed.NewFileLoader(cfg.Seed.Path, logger)
			} else {
				loader = s3Loader
			}
		} else {
			loader = seed.NewFileLoader(cfg.Seed.Path, logger)
		}

		// Seeding failures are not fatal, the API can run on an empty
		// catalogue.
		if err := seed.Apply(ctx, loader, productRepo, logger); err != nil {
			logger.Warn().Err(err).Msg("catalogue seeding failed")
		}
	}

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	orderService, err := service.NewOrderService(orderRepo, cfg.Order.TotalTolerance, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize order service: %w", err)
	}

	// Initialize authentication
	authenticator := auth.New(cfg.Admin)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	adminHandler := handler.NewAdminHandler(authenticator, logger)

	// Initialize router
	mux := router.New(productHandler, orderHandler, adminHandler, authenticator, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("store", cfg.Store.Driver).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
