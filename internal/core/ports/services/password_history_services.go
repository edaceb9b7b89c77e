package services

import (
	"context"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
)

// PasswordHistorySvcFacade manages the append-only password audit trail.
type PasswordHistorySvcFacade interface {
	// RecordPasswordChange appends an entry stamped with the current time.
	RecordPasswordChange(ctx context.Context, userID, hashedPassword, reason, ipAddress string) (*domain.PasswordHistoryEntry, error)
	// GetPasswordHistory returns at most limit entries, newest first.
	GetPasswordHistory(ctx context.Context, userID string, limit int) ([]domain.PasswordHistoryEntry, error)
	// GetLatestPasswordChange returns the newest entry or apperrors.ErrNotFound.
	GetLatestPasswordChange(ctx context.Context, userID string) (*domain.PasswordHistoryEntry, error)
	// PurgePasswordHistory deletes every entry of a user and returns how many were removed.
	PurgePasswordHistory(ctx context.Context, userID string) (int64, error)
}
