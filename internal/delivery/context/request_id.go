// Package context carries request-scoped values between the HTTP layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response and forwarded on published events.
const HeaderXRequestID = echo.HeaderXRequestID

// Keys on echo.Context.
const (
	keyRequestID = "request_id"
	keyAuth      = "auth_context"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

// GetRequestID returns the request ID set by the request ID middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(keyRequestID).(string)

	return id
}

// SetRequestID stores the request ID on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(keyRequestID, requestID)
}

// WithRequestScope attaches the request ID and a logger tagged with it.
func WithRequestScope(ctx context.Context, requestID string, base *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return context.WithValue(ctx, loggerKey, base.With(slog.String("request_id", requestID)))
}

// GetRequestIDFromContext returns the request ID of ctx, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
