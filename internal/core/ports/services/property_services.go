package services

import (
	"context"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/SscSPs/immobilier_backend/internal/dto"
)

// PropertySvcFacade provides CRUD over property listings.
type PropertySvcFacade interface {
	ListProperties(ctx context.Context, skip, limit int) ([]domain.Property, error)
	GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error)
	UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error)
	DeleteProperty(ctx context.Context, propertyID string) error
}
