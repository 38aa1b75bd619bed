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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "adbudget/internal/adapter/http"
	"adbudget/internal/adapter/memory"
	"adbudget/internal/adapter/postgres"
	"adbudget/internal/adapter/usecase"
	"adbudget/internal/config"
	"adbudget/internal/db"
	"adbudget/internal/metrics"
	"adbudget/internal/scheduler"
	"adbudget/internal/seed"
)

// main is the entry point of the budget daemon. It loads configuration,
// optionally restores brands from PostgreSQL, applies the seed file, then
// starts the scheduler and the HTTP server. On receiving a termination
// signal it stops the scheduler and gracefully shuts down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("budgetd stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []usecase.Option{
		usecase.WithLogger(logger),
		usecase.WithMetrics(metrics.NewMetrics(reg)),
	}

	if cfg.Psql.Enabled {
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		opts = append(opts, usecase.WithRepository(postgres.NewBrandRepository(pool)))
	} else {
		logger.Info("persistence disabled, brands are kept in memory only")
	}

	svc := usecase.NewBudgetUseCase(memory.NewBrandRegistry(), opts...)

	restored, err := svc.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore brands: %w", err)
	}
	if restored > 0 {
		logger.Info("brands restored", slog.Int("count", restored))
	}

	if cfg.Seed.File != "" {
		f, err := seed.LoadFile(cfg.Seed.File)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if _, err = seed.Apply(ctx, svc, f, logger); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(svc, cfg.Scheduler, scheduler.WithLogger(logger))
		if err != nil {
			return err
		}
		if err = sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()
	}

	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return err
	}
	handlerOpts := []httpadapter.Option{httpadapter.WithLocation(loc)}
	if cfg.Metrics.Enabled {
		handlerOpts = append(handlerOpts, httpadapter.WithMetricsHandler(
			cfg.Metrics.Path,
			promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		))
	}
	handler := httpadapter.NewHandler(svc, logger, handlerOpts...)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return nil
	}
	logger.Info("server gracefully stopped")
	return nil
}
