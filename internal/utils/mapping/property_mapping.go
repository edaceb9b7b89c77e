package mapping

import (
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/SscSPs/immobilier_backend/internal/models"
)

// ToModelProperty converts a domain Property to a model Property
func ToModelProperty(d domain.Property) models.Property {
	return models.Property{
		PropertyID:  d.PropertyID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Location:    d.Location,
		Rooms:       d.Rooms,
		Bathrooms:   d.Bathrooms,
		Area:        d.Area,
		Timestamps:  ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainProperty converts a model Property to a domain Property
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		PropertyID:  m.PropertyID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Location:    m.Location,
		Rooms:       m.Rooms,
		Bathrooms:   m.Bathrooms,
		Area:        m.Area,
		Timestamps:  ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainPropertySlice converts a slice of model Properties to domain Properties
func ToDomainPropertySlice(ms []models.Property) []domain.Property {
	ds := make([]domain.Property, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProperty(m)
	}
	return ds
}
