package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cfa-hud/readings-api/internal/config"
	"github.com/cfa-hud/readings-api/internal/domain/readings"
	"github.com/cfa-hud/readings-api/internal/platform/auth"
	"github.com/cfa-hud/readings-api/internal/platform/db"
	"github.com/cfa-hud/readings-api/internal/platform/middleware"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	maxBodySize     = "5M"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "readings-server",
		Short: "Patient sensor readings API",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the readings API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify database connectivity and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
			defer cancel()

			client, err := db.Connect(ctx, cfg.ConnectionString, cfg.DBName)
			if err != nil {
				return err
			}
			defer client.Disconnect(context.Background())

			fmt.Println("database reachable")
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runServer() error {
	logger := newLogger()

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load config")
		return err
	}

	// The unauthenticated mode is a deliberate, security-relevant choice and
	// is logged loudly rather than silently enabled.
	if cfg.AuthEnabled() {
		logger.Info().Msg("basic auth configured, starting authenticated API")
	} else {
		logger.Warn().Msg("API_USERNAME or API_PASSWORD missing, starting unauthenticated API")
	}

	// Database: connect and ping before binding a listener. A failed health
	// check means the process never starts serving.
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	client, err := db.Connect(ctx, cfg.ConnectionString, cfg.DBName)
	cancel()
	if err != nil {
		logger.Error().Err(err).Msg("database connection test failed")
		return err
	}
	defer client.Disconnect(context.Background())
	logger.Info().Msg("connected to database")

	repo := readings.NewRepoMongo(client, cfg.DBName)
	e := newEcho(cfg, logger, repo)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}

	return nil
}

// newEcho assembles the HTTP server: global middleware, the access-control
// gate, and the readings routes.
func newEcho(cfg *config.Config, logger zerolog.Logger, repo readings.Repository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(maxBodySize))
	e.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))
	e.Use(auth.BasicAuth(auth.Credentials{
		Username: cfg.APIUsername,
		Password: cfg.APIPassword,
	}))

	h := readings.NewHandler(readings.NewService(repo))
	h.RegisterRoutes(e)

	return e
}
