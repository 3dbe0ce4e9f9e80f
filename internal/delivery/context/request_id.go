// Package context carries request-scoped values from the deliveries down to the use cases and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the HTTP header carrying the request ID in both directions.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 128
)

// NormalizeRequestID keeps a client supplied ID when it is short printable ASCII and generates one otherwise.
// The ID ends up in every log line of the request.
func NormalizeRequestID(id string) string {
	if id == "" || len(id) > maxRequestIDLength {
		return uuid.New().String()
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return uuid.New().String()
		}
	}

	return id
}

// WithRequest stores requestID and a child of base tagged with it, and returns both.
func WithRequest(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = context.WithValue(ctx, keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyLogger, logger)

	return ctx, logger
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}

	return ""
}

func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger replaces the request-scoped logger, e.g. to add the authenticated user.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}
