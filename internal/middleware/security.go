package middleware

import (
	"net/http"

	"github.com/SscSPs/immobilier_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// CORS allows the configured frontend origins with credentials.
func CORS(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		ExposeHeaders:    []string{requestIDHeader, processTimeHeader},
		AllowCredentials: true,
	})
}

// SecureHeaders sets the usual browser hardening headers. HSTS is only sent in production.
func SecureHeaders(cfg *config.Config) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		STSSeconds:           31536000,
		STSIncludeSubdomains: true,
		IsDevelopment:        !cfg.IsProduction,
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			GetLoggerFromContext(c).Warn("Request rejected by security middleware", "error", err.Error())
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		c.Next()
	}
}
