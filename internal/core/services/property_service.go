package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/immobilier_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/google/uuid"
)

type propertyService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepositoryFacade
	now          func() time.Time
}

// NewPropertyService creates the property listing service.
func NewPropertyService(propertyRepo portsrepo.PropertyRepositoryFacade) portssvc.PropertySvcFacade {
	return &propertyService{
		propertyRepo: propertyRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *propertyService) ListProperties(ctx context.Context, skip, limit int) ([]domain.Property, error) {
	props, err := s.propertyRepo.FindProperties(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = []domain.Property{}
	}
	return props, nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	// IDs that are not UUIDs cannot exist.
	if _, err := uuid.Parse(propertyID); err != nil {
		return nil, apperrors.ErrNotFound
	}
	return s.propertyRepo.FindPropertyByID(ctx, propertyID)
}

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	now := s.now()
	prop := domain.Property{
		PropertyID:  uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Rooms:       req.Rooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if req.Price != nil {
		prop.Price = *req.Price
	}

	if err := s.propertyRepo.SaveProperty(ctx, prop); err != nil {
		s.LogError(ctx, err, "Failed to create property")
		return nil, err
	}
	s.LogInfo(ctx, "Property created", slog.String("property_id", prop.PropertyID))
	return &prop, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	prop, err := s.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		prop.Title = *req.Title
	}
	if req.Description != nil {
		prop.Description = req.Description
	}
	if req.Price != nil {
		prop.Price = *req.Price
	}
	if req.Location != nil {
		prop.Location = *req.Location
	}
	if req.Rooms != nil {
		prop.Rooms = req.Rooms
	}
	if req.Bathrooms != nil {
		prop.Bathrooms = req.Bathrooms
	}
	if req.Area != nil {
		prop.Area = req.Area
	}
	prop.UpdatedAt = s.now()

	if err := s.propertyRepo.UpdateProperty(ctx, *prop); err != nil {
		s.LogError(ctx, err, "Failed to update property", slog.String("property_id", propertyID))
		return nil, err
	}
	return prop, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	if _, err := uuid.Parse(propertyID); err != nil {
		return apperrors.ErrNotFound
	}
	if err := s.propertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Property deleted", slog.String("property_id", propertyID))
	return nil
}
