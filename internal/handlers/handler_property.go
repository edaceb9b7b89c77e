package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/SscSPs/immobilier_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const msgPropertyNotFound = "Property not found"

// propertyHandler handles HTTP requests related to property listings.
type propertyHandler struct {
	propertyService portssvc.PropertySvcFacade
}

func newPropertyHandler(ps portssvc.PropertySvcFacade) *propertyHandler {
	return &propertyHandler{propertyService: ps}
}

// registerPropertyRoutes registers the public property routes.
func registerPropertyRoutes(r *gin.Engine, propertyService portssvc.PropertySvcFacade) {
	setupValidator()
	h := newPropertyHandler(propertyService)

	properties := r.Group("/api/properties")
	{
		properties.GET("/", h.listProperties)
		properties.POST("/", h.createProperty)
		properties.GET("/:id", h.getProperty)
		properties.PUT("/:id", h.updateProperty)
		properties.DELETE("/:id", h.deleteProperty)
	}
}

func (h *propertyHandler) fail(c *gin.Context, err error, action string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		respondError(c, http.StatusNotFound, msgPropertyNotFound)
		return
	}
	middleware.GetLoggerFromContext(c).Error("Failed to "+action, slog.String("error", err.Error()))
	respondError(c, http.StatusInternalServerError, "Internal server error")
}

// listProperties godoc
// @Summary List properties
// @Tags properties
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.PropertyResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/properties/ [get]
func (h *propertyHandler) listProperties(c *gin.Context) {
	var params dto.ListPropertiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithValidationError(c, err, locQuery)
		return
	}

	props, err := h.propertyService.ListProperties(c.Request.Context(), params.Skip, params.Limit)
	if err != nil {
		h.fail(c, err, "list properties")
		return
	}
	c.JSON(http.StatusOK, dto.ToPropertyResponseList(props))
}

// getProperty godoc
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} dto.PropertyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/properties/{id} [get]
func (h *propertyHandler) getProperty(c *gin.Context) {
	prop, err := h.propertyService.GetPropertyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "get property")
		return
	}
	c.JSON(http.StatusOK, dto.ToPropertyResponse(prop))
}

// createProperty godoc
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param property body dto.CreatePropertyRequest true "Property details"
// @Success 201 {object} dto.PropertyResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/properties/ [post]
func (h *propertyHandler) createProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidationError(c, err, locBody)
		return
	}

	prop, err := h.propertyService.CreateProperty(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "create property")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPropertyResponse(prop))
}

// updateProperty godoc
// @Summary Update a property
// @Description Only the fields present in the body are changed.
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param property body dto.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} dto.PropertyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/properties/{id} [put]
func (h *propertyHandler) updateProperty(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidationError(c, err, locBody)
		return
	}

	prop, err := h.propertyService.UpdateProperty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err, "update property")
		return
	}
	c.JSON(http.StatusOK, dto.ToPropertyResponse(prop))
}

// deleteProperty godoc
// @Summary Delete a property
// @Tags properties
// @Param id path string true "Property ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/properties/{id} [delete]
func (h *propertyHandler) deleteProperty(c *gin.Context) {
	if err := h.propertyService.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "delete property")
		return
	}
	c.Status(http.StatusNoContent)
}
