package bloomgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with filter-specific helpers so that operations
// log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler defaults
// to an info-level text handler on stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// LogInsert logs an insert operation over count scalar elements.
func (l *Logger) LogInsert(count int, err error) {
	if err != nil {
		l.Error("insert failed", "elements", count, "error", err)
	} else {
		l.Debug("insert completed", "elements", count)
	}
}

// LogDelete logs a delete operation: count scalar elements visited, deleted
// of them removed.
func (l *Logger) LogDelete(count, deleted int, err error) {
	if err != nil {
		l.Error("delete failed", "elements", count, "error", err)
	} else {
		l.Debug("delete completed", "elements", count, "deleted", deleted)
	}
}

// LogQuery logs a membership query over count scalar elements.
func (l *Logger) LogQuery(count int, err error) {
	if err != nil {
		l.Error("query failed", "elements", count, "error", err)
	} else {
		l.Debug("query completed", "elements", count)
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed", "name", name, "error", err)
	} else {
		l.InfoContext(ctx, "snapshot completed", "name", name)
	}
}
