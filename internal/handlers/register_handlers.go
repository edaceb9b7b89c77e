package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/immobilier_backend/cmd/docs"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/middleware"
	"github.com/SscSPs/immobilier_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to build login rate limiter: %w", err)
	}

	registerHealthRoutes(r, cfg)
	r.GET("/metrics", middleware.MetricsHandler())

	registerAuthRoutes(r, services, loginLimiter)
	registerPropertyRoutes(r, services.Property)

	setupSwaggerRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Not Found")
	})
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.Version = cfg.APIVersion
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
