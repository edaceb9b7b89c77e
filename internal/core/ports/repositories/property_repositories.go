package repositories

import (
	"context"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
)

// PropertyReader defines read operations for property listings
type PropertyReader interface {
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)
	FindProperties(ctx context.Context, limit int, offset int) ([]domain.Property, error)
}

// PropertyWriter defines write operations for property listings
type PropertyWriter interface {
	SaveProperty(ctx context.Context, property domain.Property) error
	UpdateProperty(ctx context.Context, property domain.Property) error
	DeleteProperty(ctx context.Context, propertyID string) error
}

// PropertyRepositoryFacade combines all property-related repository interfaces
type PropertyRepositoryFacade interface {
	PropertyReader
	PropertyWriter
}
