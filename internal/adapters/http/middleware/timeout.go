package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/logging"
)

// Timeout returns middleware that enforces a request deadline. The handler
// context carries the deadline, so stage lock waits and store transactions
// abort with it. When the deadline passes first, a 504 problem response is
// written and whatever the handler produces afterwards is discarded.
//
// The handler runs in a separate goroutine. The shared mutex guarantees that
// exactly one of the handler or the timeout path reaches the client, and a
// handler panic is carried back to the calling goroutine.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{w: w}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				// Re-raised on the request goroutine so Recovery answers it.
				panic(p)
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.flush()
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.expired = true

				logging.FromContext(r.Context()).WarnContext(r.Context(), "request deadline exceeded",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", timeout),
				)
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("%w: request exceeded %s", domain.ErrTimeout, timeout))
			}
		})
	}
}

// bufferedWriter holds the handler's response until the handler returns.
// Once expired is set every further write is dropped.
type bufferedWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	expired     bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.header == nil {
		bw.header = make(http.Header)
	}
	return bw.header
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !bw.wroteHeader {
		bw.statusCode = http.StatusOK
		bw.wroteHeader = true
	}
	bw.buf = append(bw.buf, b...)
	return len(b), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.wroteHeader || bw.expired {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

// flush copies the buffered response to the underlying writer. Must be
// called with bw.mu held.
func (bw *bufferedWriter) flush() {
	if bw.header != nil {
		maps.Copy(bw.w.Header(), bw.header)
	}
	if bw.wroteHeader {
		bw.w.WriteHeader(bw.statusCode)
	}
	if len(bw.buf) > 0 {
		_, _ = bw.w.Write(bw.buf)
	}
}
