package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager scopes multi-table writes (a user plus its password history entry)
// to one pgx transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a transaction that was already committed.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
