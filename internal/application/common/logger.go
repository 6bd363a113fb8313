package common

import "context"

// AssessmentLogger receives diagnostic events from assessment handlers, e.g.
// per-point progress during a sensitivity sweep.
type AssessmentLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger AssessmentLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, falling back to a
// no-op logger so handlers never need a nil check.
func LoggerFromContext(ctx context.Context) AssessmentLogger {
	if logger, ok := ctx.Value(loggerKey).(AssessmentLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {}
