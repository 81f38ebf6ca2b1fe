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

	"radio-mediaplan/internal/adapter/advisor"
	httpadapter "radio-mediaplan/internal/adapter/http"
	"radio-mediaplan/internal/adapter/mailer"
	"radio-mediaplan/internal/adapter/postgres"
	"radio-mediaplan/internal/adapter/static"
	"radio-mediaplan/internal/adapter/usecase"
	"radio-mediaplan/internal/config"
	"radio-mediaplan/internal/config/configs"
	"radio-mediaplan/internal/core/port"
	"radio-mediaplan/internal/db"
	"radio-mediaplan/internal/metrics"
	"radio-mediaplan/internal/resilience"
)

// main loads configuration, builds the catalog and the calculator, wires the
// advisor and mailer behind resilient clients and serves the HTTP API until
// SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	repo, closeRepo, err := catalogRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	calc, err := usecase.LoadCalculator(ctx, repo, cfg.Pricing.Policy())
	if err != nil {
		return err
	}
	logger.Info("catalog loaded",
		slog.String("source", cfg.Catalog.Normalized()),
		slog.Int("stations", len(calc.Catalog().Stations)),
		slog.String("reach_mode", string(calc.Policy().ReachMode)))

	m := metrics.New()
	registry := resilience.NewRegistry()

	advisorHTTP := resilience.NewClient(providerConfig("advisor", cfg.Advisor.Timeout, cfg.Advisor.MaxRetries, logger))
	registry.Register(advisorHTTP)
	adv, err := advisor.New(cfg.Advisor, calc.Catalog(), calc.Policy(), advisorHTTP, logger)
	if err != nil {
		return err
	}
	if cfg.Advisor.APIKey == "" {
		logger.Warn("advisor API key not configured, plans will use the fallback recommendation")
	}

	mailHTTP := resilience.NewClient(providerConfig("mailer", cfg.Mail.Timeout, 1, logger))
	registry.Register(mailHTTP)
	notifier := mailer.New(cfg.Mail, mailHTTP, m, logger)

	svc := usecase.NewMediaPlanUseCase(calc, adv, notifier, m, logger)
	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		Metrics:       m.Handler(),
		Health:        registry,
		PlanRateLimit: cfg.HTTP.PlanRateLimit,
		SendRateLimit: cfg.HTTP.SendRateLimit,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
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
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

// catalogRepository returns the configured catalog source and a cleanup
// function. The postgres source optionally migrates and seeds the schema.
func catalogRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CatalogRepository, func(), error) {
	if cfg.Catalog.Normalized() != configs.CatalogPostgres {
		return static.NewCatalogRepository(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, static.DefaultCatalog()); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("seed catalog: %w", err)
		}
		logger.Info("catalog seeded")
	}
	return postgres.NewCatalogRepository(pool), pool.Close, nil
}

func providerConfig(name string, timeout time.Duration, retries uint64, logger *slog.Logger) resilience.ClientConfig {
	cfg := resilience.DefaultClientConfig(name)
	cfg.CircuitBreaker.Logger = logger
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	cfg.MaxRetries = retries
	return cfg
}
