// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// RelationLogger provides structured logging for relationship operations.
// One instance per service keeps the "relation" attribute consistent.
type RelationLogger struct {
	relation string
	logger   *Logger
}

// NewRelationLogger creates a RelationLogger for the given relation kind
// ("friendship", "enmity", "user").
func NewRelationLogger(relation string) *RelationLogger {
	return &RelationLogger{
		relation: relation,
		logger:   GlobalLogger,
	}
}

// Info logs a successful domain operation.
func (l *RelationLogger) Info(ctx context.Context, operation, msg string, attrs ...any) {
	base := []any{
		slog.String("relation", l.relation),
		slog.String("operation", operation),
	}
	l.logger.InfoContext(ctx, msg, append(base, attrs...)...)
}

// Warn logs a rejected domain operation (precondition failure).
func (l *RelationLogger) Warn(ctx context.Context, operation, msg string, attrs ...any) {
	base := []any{
		slog.String("relation", l.relation),
		slog.String("operation", operation),
	}
	l.logger.WarnContext(ctx, msg, append(base, attrs...)...)
}

// Error logs an unexpected failure in a domain operation.
func (l *RelationLogger) Error(ctx context.Context, operation string, err error, attrs ...any) {
	base := []any{
		slog.String("relation", l.relation),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	}
	l.logger.ErrorContext(ctx, "operation failed", append(base, attrs...)...)
}
