package dto

import (
	"time"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
)

// CreatePropertyRequest defines the data needed to create a property listing.
type CreatePropertyRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Price       *int64  `json:"price" binding:"required"`
	Location    string  `json:"location" binding:"required,max=200"`
	Rooms       *int32  `json:"rooms"`
	Bathrooms   *int32  `json:"bathrooms"`
	Area        *int32  `json:"area"`
}

// UpdatePropertyRequest defines the data allowed for updating a property.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePropertyRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Price       *int64  `json:"price"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	Rooms       *int32  `json:"rooms"`
	Bathrooms   *int32  `json:"bathrooms"`
	Area        *int32  `json:"area"`
}

// ListPropertiesParams defines query parameters for listing properties.
type ListPropertiesParams struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=0"`
}

// PropertyResponse defines the data returned for a property.
type PropertyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Price       int64     `json:"price"`
	Location    string    `json:"location"`
	Rooms       *int32    `json:"rooms"`
	Bathrooms   *int32    `json:"bathrooms"`
	Area        *int32    `json:"area"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPropertyResponse converts a domain.Property to PropertyResponse DTO
func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.PropertyID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Rooms:       p.Rooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.Area,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPropertyResponseList converts a slice of domain.Property to PropertyResponse DTOs
func ToPropertyResponseList(props []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(props))
	for i := range props {
		out[i] = ToPropertyResponse(&props[i])
	}
	return out
}
