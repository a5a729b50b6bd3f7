// Package logging defines the structured-logging interface used across the
// project together with slog and zap backed implementations.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "answer generated", "user_id", userID, "len", len(answer))
type Logger interface {
	// Debug logs diagnostic details (payload sizes, query parameters).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// WithRequestID stores a request id in ctx. Both implementations emit it as
// the request_id attribute.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// zapFields prepares args for the zap backend, which has no ReplaceAttr hook:
// secret values are masked and the request id is appended.
func zapFields(ctx context.Context, args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); i++ {
		out = append(out, args[i])
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			continue
		}
		i++
		if _, secret := secretKeys[key]; secret {
			out = append(out, redacted)
		} else {
			out = append(out, args[i])
		}
	}
	if id := RequestID(ctx); id != "" {
		out = append(out, string(ctxKeyRequestID), id)
	}
	return out
}

// New builds a Logger writing to w.
//
// format is one of "json", "text" (slog handlers) or "zap" (zap production
// encoder). level is one of "debug", "info", "warn", "error".
func New(format, level string, w io.Writer) (Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "", "json":
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, handlerOptions(lvl)))), nil
	case "text":
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, handlerOptions(lvl)))), nil
	case "zap":
		return newZapLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Nop discards everything. Useful in tests.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...any) {}
func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Warn(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
func (n Nop) With(...any) Logger                  { return n }
