package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/teamtally/internal/config"
	"github.com/mmynk/teamtally/internal/jobs"
	"github.com/mmynk/teamtally/internal/metrics"
	"github.com/mmynk/teamtally/internal/service"
	"github.com/mmynk/teamtally/internal/storage"
	"github.com/mmynk/teamtally/internal/storage/collections"
	"github.com/mmynk/teamtally/internal/storage/rediskv"
	"github.com/mmynk/teamtally/internal/storage/sqlstore"
	"github.com/mmynk/teamtally/internal/tracker"
	"github.com/mmynk/teamtally/pkg/logging"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		slog.Debug("No .env file loaded", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStore()
	slog.Info("Storage initialized", "driver", cfg.StorageDriver)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	tr := tracker.New(store)

	if cfg.OverdueSchedule != "" {
		reporter := jobs.NewOverdueReporter(tr, m)
		if err := reporter.Refresh(ctx); err != nil {
			slog.Warn("Initial overdue check failed", "error", err)
		}
		if err := reporter.Start(cfg.OverdueSchedule); err != nil {
			return err
		}
		defer reporter.Stop()
	}

	handler := newRouter(service.NewTrackerService(tr), reg, serverInterceptors(m))

	srv := &http.Server{
		Addr: cfg.Addr(),
		// Wrap with h2c for HTTP/2 without TLS (required for Connect)
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

// openStore opens the backend selected by cfg.StorageDriver. The returned
// func releases it.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlstore.NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	case config.DriverPostgres:
		store, err := sqlstore.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	case config.DriverRedis:
		provider, err := rediskv.Open(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		slog.Warn("Redis storage writes collections independently; a failed update can leave them inconsistent")
		return collections.New(provider), func() { provider.Close() }, nil

	case config.DriverMemory:
		return collections.New(collections.NewMemoryProvider()), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
