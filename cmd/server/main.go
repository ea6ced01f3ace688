package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cokeke26/fenats/internal/admin"
	"github.com/cokeke26/fenats/internal/bootstrap"
	"github.com/cokeke26/fenats/internal/config"
	"github.com/cokeke26/fenats/internal/router"
	"github.com/cokeke26/fenats/internal/shared/database"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/cokeke26/fenats/internal/shared/token"
	"github.com/cokeke26/fenats/internal/shared/validator"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	// Initialize logger
	logger.Setup(env)
	slog.Info("iniciando servidor", "env", env)

	// Run application
	if err := run(env); err != nil {
		slog.Error("el servidor terminó con error", "error", err)
		os.Exit(1)
	}

	slog.Info("servidor detenido", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error cerrando la base de datos", "error", err)
		}
	}()

	// First SUPERADMIN, only while the admin table is empty
	adminService := admin.NewAdminService(db.DB, admin.NewAdminRepository())
	if _, err := adminService.SeedSuperAdmin(ctx, cfg.Admin); err != nil {
		return fmt.Errorf("seed superadmin: %w", err)
	}

	// Setup server
	srv, err := setupServer(cfg, db)
	if err != nil {
		return err
	}

	// Start server with graceful shutdown
	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, db *database.DB) (*bootstrap.Server, error) {
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	// Register common validators
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router.Setup(ginEngine, cfg, db, token.NewJWTManager(cfg))

	slog.Info("servidor configurado",
		"env", cfg.App.Env,
		"driver", cfg.Database.Driver,
		"public_base_url", cfg.App.PublicBaseURL,
	)

	return bootstrap.New(cfg, ginEngine), nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("señal de término recibida", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("deteniendo servidor...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	}
}
