package rest

import (
	"context"
	"log/slog"
)

type requestMetaKey struct{}

type requestMeta struct {
	requestID string
	traceID   string
}

// WithRequestMeta stores the request and trace ids for Logger.
func WithRequestMeta(ctx context.Context, requestID, traceID string) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, requestMeta{requestID: requestID, traceID: traceID})
}

func RequestID(ctx context.Context) string {
	meta, _ := ctx.Value(requestMetaKey{}).(requestMeta)
	return meta.requestID
}

// Logger returns base annotated with the ids stored in ctx, if any.
func Logger(ctx context.Context, base *slog.Logger) *slog.Logger {
	meta, ok := ctx.Value(requestMetaKey{}).(requestMeta)
	if !ok {
		return base
	}
	logger := base.With("request_id", meta.requestID)
	if meta.traceID != "" {
		logger = logger.With("trace_id", meta.traceID)
	}
	return logger
}
