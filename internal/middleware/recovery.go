package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a logged 500 with a generic body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		GetLoggerFromContext(c).Error("Unhandled panic",
			slog.String("panic", fmt.Sprint(recovered)),
			slog.String("exception_type", fmt.Sprintf("%T", recovered)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal server error"})
	})
}
