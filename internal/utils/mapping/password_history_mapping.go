package mapping

import (
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/SscSPs/immobilier_backend/internal/models"
)

func ToModelPasswordHistory(d domain.PasswordHistoryEntry) models.PasswordHistory {
	return models.PasswordHistory{
		HistoryID:      d.HistoryID,
		UserID:         d.UserID,
		HashedPassword: d.HashedPassword,
		ChangedAt:      d.ChangedAt,
		Reason:         d.Reason,
		IPAddress:      d.IPAddress,
	}
}

func ToDomainPasswordHistory(m models.PasswordHistory) domain.PasswordHistoryEntry {
	return domain.PasswordHistoryEntry{
		HistoryID:      m.HistoryID,
		UserID:         m.UserID,
		HashedPassword: m.HashedPassword,
		ChangedAt:      m.ChangedAt,
		Reason:         m.Reason,
		IPAddress:      m.IPAddress,
	}
}

func ToDomainPasswordHistorySlice(ms []models.PasswordHistory) []domain.PasswordHistoryEntry {
	ds := make([]domain.PasswordHistoryEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPasswordHistory(m)
	}
	return ds
}
