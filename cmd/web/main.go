// Command web serves the claim aggregation API. When a claims workbook is
// configured it is imported into the in-memory store once at startup.
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

	"claimdesk/internal/config"
	"claimdesk/internal/infrastructure"
	"claimdesk/internal/repository"
	"claimdesk/internal/services"
	transport "claimdesk/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "claimdesk: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "path to the optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, logCloser, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := repository.NewMemoryRepository()
	svc := services.NewClaimService(repo, services.NewEnrichmentService(logger), logger)

	if cfg.Paths.ClaimsFile != "" {
		n, err := svc.ImportFrom(ctx, repository.NewExcelRepository(cfg.Paths.ClaimsFile))
		if err != nil {
			return fmt.Errorf("startup import failed: %w", err)
		}
		logger.Info("claims workbook imported",
			slog.String("path", cfg.Paths.ClaimsFile),
			slog.Int("cases", n),
		)
	}

	router := transport.NewRouter(cfg, logger, transport.NewClaimsHandler(svc, logger))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
