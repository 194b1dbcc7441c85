// Package storage holds the outbound persistence adapters. The SQL engines
// live in sqlstore; this package wraps any [ports.DealStore] with a circuit
// breaker, OpenTelemetry spans and operation metrics.
//
// Construction:
//
//	inner, _ := sqlstore.Open(ctx, cfg.Database)
//	store := storage.NewGuarded(inner, "sqlite", &cfg.Breaker, metrics, logger)
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.DealStore     = (*Guarded)(nil)
	_ ports.HealthChecker = (*Guarded)(nil)
)

// Guarded decorates a DealStore. Only infrastructure failures count against
// the breaker; not-found, validation and conflict outcomes are business
// results and leave it closed.
type Guarded struct {
	inner   ports.DealStore
	system  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewGuarded wraps inner. The system name (e.g. "sqlite", "postgres") labels
// spans and metrics. If metrics is nil, metric recording is skipped.
func NewGuarded(inner ports.DealStore, system string, cfg *config.CircuitBreakerConfig,
	metrics *telemetry.Metrics, logger *slog.Logger,
) *Guarded {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "deal-store",
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Guarded{
		inner:   inner,
		system:  system,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

// Get implements ports.DealStore.
func (g *Guarded) Get(ctx context.Context, id string) (*deal.Deal, error) {
	var out *deal.Deal
	err := g.run(ctx, "get", func(ctx context.Context) error {
		var err error
		out, err = g.inner.Get(ctx, id)
		return err
	})
	return out, err
}

// List implements ports.DealStore.
func (g *Guarded) List(ctx context.Context, filter deal.Filter) ([]deal.Deal, error) {
	var out []deal.Deal
	err := g.run(ctx, "list", func(ctx context.Context) error {
		var err error
		out, err = g.inner.List(ctx, filter)
		return err
	})
	return out, err
}

// Transact implements ports.DealStore. The whole transaction is one breaker
// call and one span.
func (g *Guarded) Transact(ctx context.Context, fn func(tx ports.DealTx) error) error {
	return g.run(ctx, "transact", func(ctx context.Context) error {
		return g.inner.Transact(ctx, fn)
	})
}

// Ping implements ports.DealStore.
func (g *Guarded) Ping(ctx context.Context) error {
	return g.run(ctx, "ping", g.inner.Ping)
}

// Close implements ports.DealStore.
func (g *Guarded) Close() error {
	return g.inner.Close()
}

// Name implements ports.HealthChecker.
func (g *Guarded) Name() string {
	return "database"
}

// HealthCheck reports the store as failing while the breaker is open and
// otherwise issues a round trip through the breaker.
func (g *Guarded) HealthCheck(ctx context.Context) error {
	switch state := g.breaker.State(); state {
	case gobreaker.StateOpen:
		return errors.New("database: failing (circuit breaker open)")
	case gobreaker.StateClosed, gobreaker.StateHalfOpen:
		return g.Ping(ctx)
	default:
		return fmt.Errorf("database: unknown circuit breaker state %v", state)
	}
}

// run executes op inside the breaker and a client span, then records metrics.
// Breaker rejections are reported as domain.ErrUnavailable.
func (g *Guarded) run(ctx context.Context, operation string, op func(context.Context) error) error {
	start := time.Now()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := g.startSpan(ctx, operation)
		defer span.End()

		opErr := op(spanCtx)
		finishSpan(span, opErr)
		return struct{}{}, opErr
	})

	result := resultOf(err)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: deal store: %w", domain.ErrUnavailable, err)
	}

	g.recordMetrics(ctx, operation, start, result)
	return err
}

func (g *Guarded) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("storage")
	return tracer.Start(ctx, "db "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", g.system),
			attribute.String("db.operation", operation),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	switch {
	case err == nil:
	case isSuccessful(err):
		// Business outcomes are events, not span errors.
		span.AddEvent("result", trace.WithAttributes(attribute.String("error", err.Error())))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

// recordMetrics is safe to call with nil metrics.
func (g *Guarded) recordMetrics(ctx context.Context, operation string, start time.Time, result string) {
	if g.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(g.system),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	g.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
