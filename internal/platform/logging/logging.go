// Package logging builds the service's slog logger from config.LogConfig and
// carries request-scoped loggers through context.
//
// Every record written by a logger from New carries the service name, so logs
// from the API process and from a shared collector can be told apart. Secrets
// are masked by the masq-backed attribute replacer in redact_handler.go.
//
// Request code enriches the logger once and passes it on through context:
//
//	ctx, logger := logging.With(ctx, slog.String("request_id", id))
//	logger.InfoContext(ctx, "request started")
//
// Service errors are logged with the operation name, the deal or stage they
// concern and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to reorder column",
//	    slog.String("operation", "ReorderColumn"),
//	    slog.String("stage", string(stage)),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
)

type contextKey struct{}

// Output formats accepted in config.LogConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// New builds a logger for cfg writing to w. An unparsable level falls back to
// info and any format other than text writes JSON. Source locations are only
// recorded at debug level. A non-empty service is attached to every record.
func New(cfg config.LogConfig, service string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, FormatText) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if service != "" {
		logger = logger.With(slog.String("service", service))
	}
	return logger
}

// ParseLevel reads a level name as slog does ("debug", "info", "warn",
// "error", optionally with an offset such as "debug-2"), case-insensitively.
// "warning" is accepted as an alias of "warn".
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return lvl, nil
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With derives a logger from the one in ctx with args attached, stores it in
// the returned context and returns it as well.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	logger := FromContext(ctx).With(args...)
	return WithLogger(ctx, logger), logger
}
