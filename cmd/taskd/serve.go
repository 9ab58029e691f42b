package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/taskd/internal/http"
	"github.com/fyrsmithlabs/taskd/internal/logging"
	"github.com/fyrsmithlabs/taskd/pkg/extract"
	"github.com/fyrsmithlabs/taskd/pkg/identity"
)

// serveCmd starts the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the taskd HTTP server",
	Long: `Start the taskd HTTP server exposing extraction and resolution
endpoints plus health and Prometheus metrics.

Examples:
  # Start with defaults (127.0.0.1:9180)
  taskd serve

  # Configure via environment
  TASKD_SERVER_HTTP_PORT=8080 taskd serve`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer logging.Sync(logger) //nolint:errcheck

	var roster []identity.User
	if cfg.Resolver.RosterPath != "" {
		roster, err = identity.LoadRoster(cfg.Resolver.RosterPath)
		if err != nil {
			return err
		}
		logger.Info("loaded roster",
			zap.String("path", cfg.Resolver.RosterPath),
			zap.Int("users", len(roster)),
		)
	}

	engine := extract.NewEngine(cfg.Extraction, logger.Named("extract"))
	resolver := identity.NewResolver(cfg.Resolver.Identity(), logger.Named("identity"))

	srv, err := http.NewServer(engine, resolver, roster, logger, &http.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server shutdown complete")
	return nil
}
