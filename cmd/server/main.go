// Package main is the entry point for the deal pipeline service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/deal-pipeline/internal/adapters/http"
	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/locking"
	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/storage"
	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/storage/sqlstore"

	"github.com/jsamuelsen11/deal-pipeline/internal/app"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/health"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	startupTimeout        = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log, cfg.Telemetry.ServiceName, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, opening the store
	// and the lock backend).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*storage.Guarded](injector))
	if locker, ok := do.MustInvoke[ports.StageLocker](injector).(ports.HealthChecker); ok {
		registry.Register(locker)
	}

	logger.Info("deal store ready",
		slog.String("driver", cfg.Database.Driver),
		slog.String("lock_backend", cfg.Locking.Backend),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeResources(injector, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	closeResources(injector, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// closeResources releases the deal store and the lock backend once no
// request can reach them anymore.
func closeResources(injector do.Injector, logger *slog.Logger) {
	if locker, ok := do.MustInvoke[ports.StageLocker](injector).(interface{ Close() error }); ok {
		if err := locker.Close(); err != nil {
			logger.Error("lock backend close error", slog.Any("error", err))
		}
	}
	if err := do.MustInvoke[*storage.Guarded](injector).Close(); err != nil {
		logger.Error("deal store close error", slog.Any("error", err))
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storage.Guarded, error) {
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		store, err := sqlstore.Open(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("opening deal store: %w", err)
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return storage.NewGuarded(store, store.Driver(), &cfg.Breaker, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DealStore, error) {
		return do.MustInvoke[*storage.Guarded](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.StageLocker, error) {
		if cfg.Locking.Backend != config.LockBackendRedis {
			return locking.NewLocal(cfg.Locking.WaitTimeout), nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		client, err := locking.NewRedisClient(ctx, cfg.Locking.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connecting lock backend: %w", err)
		}
		return locking.NewRedis(client, locking.RedisOptions{
			WaitTimeout: cfg.Locking.WaitTimeout,
			LeaseTTL:    cfg.Locking.LeaseTTL,
			KeyPrefix:   cfg.Locking.KeyPrefix,
		}, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.OrderingEngine, error) {
		store := do.MustInvoke[ports.DealStore](i)
		locker := do.MustInvoke[ports.StageLocker](i)
		return app.NewOrderingEngine(store, locker), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Importer, error) {
		engine := do.MustInvoke[*app.OrderingEngine](i)
		return app.NewImporter(engine, cfg.Import), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DealService, error) {
		store := do.MustInvoke[ports.DealStore](i)
		engine := do.MustInvoke[*app.OrderingEngine](i)
		importer := do.MustInvoke[*app.Importer](i)
		return app.NewDealService(store, engine, importer, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DealHandler, error) {
		svc := do.MustInvoke[ports.DealService](i)
		return handlers.NewDealHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		dealH := do.MustInvoke[*handlers.DealHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(dealH, healthH, middleware.Pipeline(cfg, logger, metrics)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
