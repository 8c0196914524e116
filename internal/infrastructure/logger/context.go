package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

var loggerKey contextKey

// WithContext stashes a logger in the context. The HTTP middleware
// attaches a request-scoped logger this way so deeper layers can log
// with the request ID without threading a logger parameter through.
func WithContext(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stashed in the context, or a no-op
// logger when none was attached.
func FromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

// WithRequestID attaches a request-scoped logger carrying the request
// ID and returns both the new context and the enriched logger.
func WithRequestID(ctx context.Context, base *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	log := base.With(zap.String("request_id", requestID))
	return WithContext(ctx, log), log
}
