package repositories

import (
	"context"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by exact (case-sensitive) username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByUsernameOrEmail returns the first user matching either field.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// CountUsers returns the number of stored users.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUserInTx persists a new user within a transaction.
	// Unique violations are reported as apperrors.ConflictError.
	SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error

	// UpdateUserPasswordInTx replaces the stored password hash within a transaction.
	UpdateUserPasswordInTx(ctx context.Context, tx pgx.Tx, user domain.User) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// DeleteUser removes a user. Password history is removed by cascade.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
	TransactionManager
}
