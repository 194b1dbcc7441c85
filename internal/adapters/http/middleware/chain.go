package middleware

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/telemetry"
)

// Pipeline returns the inbound middleware of the deal API, outermost first,
// ready for chi's Use. Recovery wraps everything so that a panic anywhere is
// answered; rate limiting runs last so rejected writes are still traced and
// logged. Board data changes with every write, so no response is cacheable.
func Pipeline(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(cfg.Server.WriteTimeout),
		chimw.NoCache,
		RateLimit(cfg.RateLimit),
	}
}
