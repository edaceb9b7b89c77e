package mapping

import (
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/SscSPs/immobilier_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		Email:          d.Email,
		HashedPassword: d.HashedPassword,
		IsActive:       d.IsActive,
		Timestamps:     ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		IsActive:       m.IsActive,
		Timestamps:     ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
