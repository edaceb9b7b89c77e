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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool DBPool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT
	u.user_id, u.username, u.email, u.hashed_password, u.is_active,
	u.created_at, u.updated_at
FROM users u
`

// getUsers runs the user select with the given filter clause.
func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, userSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect user rows: %w", err)
	}
	return mapping.ToDomainUserSlice(modelUsers), nil
}

func (r *PgxUserRepository) getUser(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	users, err := r.getUsers(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE u.user_id = $1;`, userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE u.username = $1;`, username)
}

func (r *PgxUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE u.username = $1 OR u.email = $2 LIMIT 1;`, username, email)
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return r.getUsers(ctx, `ORDER BY u.created_at DESC, u.user_id LIMIT $1 OFFSET $2;`, limit, offset)
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *PgxUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, email, hashed_password, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.HashedPassword,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("username or email already registered")
		}
		return fmt.Errorf("failed to save user %s: %w", user.Username, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUserPasswordInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	query := `UPDATE users SET hashed_password = $1, updated_at = $2 WHERE user_id = $3;`
	tag, err := tx.Exec(ctx, query, user.HashedPassword, user.UpdatedAt, user.UserID)
	if err != nil {
		return fmt.Errorf("failed to update password of user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
