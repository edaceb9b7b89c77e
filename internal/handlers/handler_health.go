package handlers

import (
	"net/http"

	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/SscSPs/immobilier_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

func registerHealthRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Message: "API is running successfully"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.RootResponse{
			Name:        cfg.AppName,
			Version:     cfg.APIVersion,
			Description: "API for managing real estate properties",
		})
	})
}
