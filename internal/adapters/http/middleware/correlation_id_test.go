package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		// fromRequestID expects the correlation ID to fall back to the request ID.
		fromRequestID bool
	}{
		{name: "reused from header", incoming: "reorder-42"},
		{name: "falls back to request ID", incoming: "", fromRequestID: true},
		{name: "invalid header falls back to request ID", incoming: "two words", fromRequestID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(
				middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					gotID = middleware.CorrelationIDFromContext(r.Context())
				})),
			)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/deals/reorder", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Correlation-ID", tt.incoming)
			}
			handler.ServeHTTP(rec, req)

			want := tt.incoming
			if tt.fromRequestID {
				want = rec.Header().Get("X-Request-ID")
			}
			if want == "" {
				t.Fatal("expected correlation ID is empty")
			}
			if gotID != want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, want)
			}
			if respID := rec.Header().Get("X-Correlation-ID"); respID != want {
				t.Errorf("response X-Correlation-ID = %q, want %q", respID, want)
			}
		})
	}
}

func TestCorrelationIDFromContext(t *testing.T) {
	t.Parallel()

	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext(empty) = %q, want empty string", id)
	}

	ctx := middleware.WithCorrelationID(context.Background(), "test-corr")
	if got := middleware.CorrelationIDFromContext(ctx); got != "test-corr" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "test-corr")
	}
}
