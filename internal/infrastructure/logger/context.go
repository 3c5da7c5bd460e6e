package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	requestIDKey
	userKey
	roleKey
)

// WithContext attaches a logger to ctx
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithRequestID stores the request id in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id stored in ctx
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// WithUser stores the acting user's name and role in ctx
func WithUser(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, userKey, username)
	return context.WithValue(ctx, roleKey, role)
}

// User returns the acting username stored in ctx
func User(ctx context.Context) string {
	v, _ := ctx.Value(userKey).(string)
	return v
}

// Role returns the acting role stored in ctx
func Role(ctx context.Context) string {
	v, _ := ctx.Value(roleKey).(string)
	return v
}

// L returns the context logger enriched with request, user and trace fields.
//
//	logger.L(ctx).Info("claim created", zap.Uint("id", id))
func L(ctx context.Context) *zap.Logger {
	l := FromContext(ctx)
	if id := RequestID(ctx); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	if u := User(ctx); u != "" {
		l = l.With(zap.String("user", u), zap.String("role", Role(ctx)))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With(
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	return l
}
