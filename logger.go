package htable

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with htable-specific helpers.
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
// This is the default for new tables.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBucket adds a bucket index field to the logger.
func (l *Logger) WithBucket(bucket int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bucket", bucket),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInsert logs an insert operation. updated reports whether an existing
// entry was overwritten rather than a new one appended.
func (l *Logger) LogInsert(bucket int, updated bool, err error) {
	if err != nil {
		l.Error("insert failed",
			"bucket", bucket,
			"updated", updated,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"bucket", bucket,
			"updated", updated,
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(bucket int, err error) {
	if err != nil {
		l.Debug("remove failed",
			"bucket", bucket,
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"bucket", bucket,
		)
	}
}

// LogGet logs a lookup.
func (l *Logger) LogGet(bucket int, hit bool) {
	l.Debug("get completed",
		"bucket", bucket,
		"hit", hit,
	)
}

// LogClose logs table teardown.
func (l *Logger) LogClose(released int) {
	l.Debug("table closed",
		"released", released,
	)
}
