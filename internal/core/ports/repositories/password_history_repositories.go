package repositories

import (
	"context"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PasswordHistoryReader defines read operations over the password audit trail.
type PasswordHistoryReader interface {
	// FindPasswordHistory returns at most limit entries for a user, newest first.
	FindPasswordHistory(ctx context.Context, userID string, limit int) ([]domain.PasswordHistoryEntry, error)

	// FindLatestPasswordHistory returns the newest entry for a user.
	FindLatestPasswordHistory(ctx context.Context, userID string) (*domain.PasswordHistoryEntry, error)
}

// PasswordHistoryWriter appends entries. Entries are never updated.
type PasswordHistoryWriter interface {
	SavePasswordHistory(ctx context.Context, entry domain.PasswordHistoryEntry) error
	SavePasswordHistoryInTx(ctx context.Context, tx pgx.Tx, entry domain.PasswordHistoryEntry) error
}

// PasswordHistoryPurger removes all entries of a user (explicit admin action).
type PasswordHistoryPurger interface {
	DeletePasswordHistory(ctx context.Context, userID string) (int64, error)
}

// PasswordHistoryRepositoryFacade combines the password history interfaces.
type PasswordHistoryRepositoryFacade interface {
	PasswordHistoryReader
	PasswordHistoryWriter
	PasswordHistoryPurger
}
