package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
)

// RateLimit returns middleware that throttles write requests (POST, PUT,
// PATCH, DELETE) with a single token bucket shared by all clients. Requests
// over the limit get a 429 problem response. Reads are never throttled.
//
// A non-positive RequestsPerSecond disables the middleware.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isWrite(r.Method) && !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				dto.WriteErrorResponse(w, r, domain.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
