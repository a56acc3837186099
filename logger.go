package bucketsort

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bucketsort-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLayer adds a layer field to the logger.
func (l *Logger) WithLayer(layer int) *Logger {
	return &Logger{
		Logger: l.Logger.With("layer", layer),
	}
}

// WithAttempt adds an attempt field to the logger.
func (l *Logger) WithAttempt(attempt int) *Logger {
	return &Logger{
		Logger: l.Logger.With("attempt", attempt),
	}
}

// LogFill logs the outcome of populating a bucket array.
func (l *Logger) LogFill(ctx context.Context, stats FillStats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fill failed",
			"inserted", stats.Inserted,
			"dropped", stats.Dropped,
			"error", err,
		)
		return
	}
	if stats.Dropped > 0 {
		l.DebugContext(ctx, "fill completed with full buckets",
			"inserted", stats.Inserted,
			"dropped", stats.Dropped,
			"duration", stats.Duration,
		)
		return
	}
	l.DebugContext(ctx, "fill completed",
		"inserted", stats.Inserted,
		"duration", stats.Duration,
	)
}

// LogPairScan logs a completed pair scan.
func (l *Logger) LogPairScan(ctx context.Context, pairs int, duration time.Duration) {
	l.DebugContext(ctx, "pair scan completed",
		"pairs", pairs,
		"duration", duration,
	)
}

// LogDowngrade logs dropping key storage from a bucket array.
func (l *Logger) LogDowngrade(ctx context.Context, items int) {
	l.DebugContext(ctx, "key storage dropped",
		"items", items,
	)
}
