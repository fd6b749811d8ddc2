package facetgrid

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with facetgrid-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithField adds a field name to the logger (useful for tagging per-field
// operations).
func (l *Logger) WithField(field string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", field),
	}
}

// WithRecords adds a record count field to the logger.
func (l *Logger) WithRecords(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("records", count),
	}
}

// LogCollect logs a statistics collection operation.
func (l *Logger) LogCollect(ctx context.Context, records, fields int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "statistics collection failed",
			"records", records,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "statistics collection completed",
			"records", records,
			"fields", fields,
		)
	}
}

// LogFacet logs a facet derivation.
func (l *Logger) LogFacet(field string, buckets int, kind string) {
	l.Debug("facet derived",
		"field", field,
		"buckets", buckets,
		"kind", kind,
	)
}

// LogArrange logs a grid arrangement.
func (l *Logger) LogArrange(rows, cols int, cellAspect float64, err error) {
	if err != nil {
		l.Error("grid arrangement failed",
			"error", err,
		)
	} else {
		l.Debug("grid arrangement completed",
			"rows", rows,
			"cols", cols,
			"cell_aspect", cellAspect,
		)
	}
}
