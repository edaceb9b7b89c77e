package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// AbortUnauthorized stops the chain with a 401 bearer challenge.
func AbortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: detail})
}

// RequireUser creates a Gin middleware handler that resolves the bearer token
// to a stored user. Every failure is a 401 with a distinct detail message.
func RequireUser(authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			AbortUnauthorized(c, "Missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			AbortUnauthorized(c, "Invalid authorization header format")
			return
		}

		user, err := authSvc.AuthenticateToken(c.Request.Context(), parts[1])
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Warn("Token rejected", slog.String("reason", appErr.Message))
				AbortUnauthorized(c, appErr.Message)
				return
			}
			logger.Error("Failed to resolve current user", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal server error"})
			return
		}

		// Add the user to the logger and both contexts
		enrichedLogger := logger.With(slog.String("user_id", user.UserID), slog.String("username", user.Username))
		ctx := WithLogger(c.Request.Context(), enrichedLogger)
		ctx = contextWithUser(ctx, user)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userCtxKey), user)

		c.Next()
	}
}
