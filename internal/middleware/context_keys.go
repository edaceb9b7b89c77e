package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userCtxKey   = contextKey("user")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It falls back to the default logger when the request did not pass through
// StructuredLoggingMiddleware (CLI commands, tests).
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// GetLoggerFromContext retrieves the request-scoped logger from the Gin context.
func GetLoggerFromContext(c *gin.Context) *slog.Logger {
	return GetLoggerFromCtx(c.Request.Context())
}

// GetUserFromContext retrieves the authenticated user stored by RequireUser.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	if val, exists := c.Get(string(userCtxKey)); exists {
		user, ok := val.(*domain.User)
		return user, ok && user != nil
	}
	// check in the request context as well
	user, ok := c.Request.Context().Value(userCtxKey).(*domain.User)
	return user, ok && user != nil
}

func contextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}
