package estyped

import "context"

// Logger is the optional debug/trace logging hook. Any structured logger
// can adapt to it; when nil is supplied, logging is disabled (no-op).
type Logger interface {
	Debug(msg string, fields ...any)
	DebugWithCtx(ctx context.Context, msg string, fields ...any)
}

// noopLogger is used when no logger is provided.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...any)                             {}
func (noopLogger) DebugWithCtx(ctx context.Context, msg string, fields ...any) {}

// safeLogger returns the provided logger or a no-op logger if nil.
func safeLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	return log
}
