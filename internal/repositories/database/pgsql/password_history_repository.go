package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/immobilier_backend/internal/core/ports/repositories"
	"github.com/SscSPs/immobilier_backend/internal/models"
	"github.com/SscSPs/immobilier_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxPasswordHistoryRepository struct {
	BaseRepository
}

func newPgxPasswordHistoryRepository(pool DBPool) *PgxPasswordHistoryRepository {
	return &PgxPasswordHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PasswordHistoryRepositoryFacade = (*PgxPasswordHistoryRepository)(nil)

const passwordHistorySelectQuery = `
SELECT ph.history_id, ph.user_id, ph.hashed_password, ph.changed_at, ph.reason, ph.ip_address
FROM password_history ph
WHERE ph.user_id = $1
ORDER BY ph.changed_at DESC, ph.history_id DESC
LIMIT $2;
`

const passwordHistoryInsertQuery = `
INSERT INTO password_history (history_id, user_id, hashed_password, changed_at, reason, ip_address)
VALUES ($1, $2, $3, $4, $5, $6);
`

func historyArgs(entry domain.PasswordHistoryEntry) []any {
	m := mapping.ToModelPasswordHistory(entry)
	return []any{m.HistoryID, m.UserID, m.HashedPassword, m.ChangedAt, m.Reason, m.IPAddress}
}

func (r *PgxPasswordHistoryRepository) SavePasswordHistory(ctx context.Context, entry domain.PasswordHistoryEntry) error {
	if _, err := r.Pool.Exec(ctx, passwordHistoryInsertQuery, historyArgs(entry)...); err != nil {
		return fmt.Errorf("failed to save password history for user %s: %w", entry.UserID, err)
	}
	return nil
}

func (r *PgxPasswordHistoryRepository) SavePasswordHistoryInTx(ctx context.Context, tx pgx.Tx, entry domain.PasswordHistoryEntry) error {
	if _, err := tx.Exec(ctx, passwordHistoryInsertQuery, historyArgs(entry)...); err != nil {
		return fmt.Errorf("failed to save password history for user %s: %w", entry.UserID, err)
	}
	return nil
}

func (r *PgxPasswordHistoryRepository) FindPasswordHistory(ctx context.Context, userID string, limit int) ([]domain.PasswordHistoryEntry, error) {
	rows, err := r.Pool.Query(ctx, passwordHistorySelectQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query password history: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PasswordHistory])
	if err != nil {
		return nil, fmt.Errorf("failed to collect password history rows: %w", err)
	}
	return mapping.ToDomainPasswordHistorySlice(entries), nil
}

func (r *PgxPasswordHistoryRepository) FindLatestPasswordHistory(ctx context.Context, userID string) (*domain.PasswordHistoryEntry, error) {
	entries, err := r.FindPasswordHistory(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &entries[0], nil
}

func (r *PgxPasswordHistoryRepository) DeletePasswordHistory(ctx context.Context, userID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM password_history WHERE user_id = $1;`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete password history for user %s: %w", userID, err)
	}
	return tag.RowsAffected(), nil
}
