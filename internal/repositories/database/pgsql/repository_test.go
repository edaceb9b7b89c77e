package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"user_id", "username", "email", "hashed_password", "is_active", "created_at", "updated_at"}

var historyColumns = []string{"history_id", "user_id", "hashed_password", "changed_at", "reason", "ip_address"}

func strPtr(s string) *string { return &s }

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return mock
}

func TestPgxUserRepository_FindUserByUsername(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantUser  string
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(userColumns).
					AddRow("u-1", "alice", "alice@example.com", "$2a$hash", true, now, now)
				mock.ExpectQuery(`FROM users u\s+WHERE u.username = `).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			wantUser: "alice",
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM users u\s+WHERE u.username = `).
					WithArgs("alice").
					WillReturnRows(pgxmock.NewRows(userColumns))
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.setupMock(mock)

			repo := newPgxUserRepository(mock)
			user, err := repo.FindUserByUsername(context.Background(), "alice")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, user.Username)
				assert.Equal(t, "$2a$hash", user.HashedPassword)
				assert.True(t, user.IsActive)
			}
			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestPgxUserRepository_FindUserByUsernameOrEmail(t *testing.T) {
	mock := newMockPool(t)
	now := time.Now().UTC()
	mock.ExpectQuery(`WHERE u.username = \$1 OR u.email = \$2`).
		WithArgs("bob", "alice@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("u-1", "alice", "alice@example.com", "$2a$hash", true, now, now))

	repo := newPgxUserRepository(mock)
	user, err := repo.FindUserByUsernameOrEmail(context.Background(), "bob", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxUserRepository_SaveUserInTx(t *testing.T) {
	now := time.Now().UTC()
	user := domain.User{
		UserID:         "u-1",
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$hash",
		IsActive:       true,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	tests := []struct {
		name         string
		execErr      error
		wantConflict bool
		wantErr      bool
	}{
		{name: "inserted"},
		{name: "unique violation", execErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, wantConflict: true, wantErr: true},
		{name: "other failure", execErr: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			mock.ExpectBegin()
			exec := mock.ExpectExec(`INSERT INTO users`).
				WithArgs("u-1", "alice", "alice@example.com", "$2a$hash", true, now, now)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			repo := newPgxUserRepository(mock)
			tx, err := repo.Begin(context.Background())
			require.NoError(t, err)

			err = repo.SaveUserInTx(context.Background(), tx, user)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantConflict, apperrors.IsConflict(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPgxUserRepository_DeleteUser(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(`DELETE FROM users`).WithArgs("u-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM users`).WithArgs("u-2").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := newPgxUserRepository(mock)
	assert.NoError(t, repo.DeleteUser(context.Background(), "u-1"))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), "u-2"), apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxUserRepository_CountUsers(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	repo := newPgxUserRepository(mock)
	count, err := repo.CountUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestPgxPasswordHistoryRepository_FindPasswordHistory(t *testing.T) {
	mock := newMockPool(t)
	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)
	mock.ExpectQuery(`FROM password_history ph`).
		WithArgs("u-1", 2).
		WillReturnRows(pgxmock.NewRows(historyColumns).
			AddRow("01HZZ2", "u-1", "$2a$new", newer, strPtr("manual_change"), strPtr("10.0.0.1")).
			AddRow("01HZZ1", "u-1", "$2a$old", older, strPtr("registration"), (*string)(nil)))

	repo := newPgxPasswordHistoryRepository(mock)
	entries, err := repo.FindPasswordHistory(context.Background(), "u-1", 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "manual_change", *entries[0].Reason)
	assert.Equal(t, "registration", *entries[1].Reason)
	assert.Nil(t, entries[1].IPAddress)
	assert.True(t, entries[0].ChangedAt.After(entries[1].ChangedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxPasswordHistoryRepository_FindLatestPasswordHistory_Empty(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`FROM password_history ph`).
		WithArgs("u-1", 1).
		WillReturnRows(pgxmock.NewRows(historyColumns))

	repo := newPgxPasswordHistoryRepository(mock)
	_, err := repo.FindLatestPasswordHistory(context.Background(), "u-1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPgxPasswordHistoryRepository_SaveAndPurge(t *testing.T) {
	mock := newMockPool(t)
	changedAt := time.Now().UTC()
	entry := domain.PasswordHistoryEntry{
		HistoryID:      "01HZZ3",
		UserID:         "u-1",
		HashedPassword: "$2a$hash",
		ChangedAt:      changedAt,
		Reason:         strPtr("password_reset"),
	}
	mock.ExpectExec(`INSERT INTO password_history`).
		WithArgs("01HZZ3", "u-1", "$2a$hash", changedAt, entry.Reason, (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM password_history`).
		WithArgs("u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	repo := newPgxPasswordHistoryRepository(mock)
	require.NoError(t, repo.SavePasswordHistory(context.Background(), entry))

	deleted, err := repo.DeletePasswordHistory(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxPropertyRepository(t *testing.T) {
	now := time.Now().UTC()
	columns := []string{"property_id", "title", "description", "price", "location", "rooms", "bathrooms", "area", "created_at", "updated_at"}
	rooms := int32(4)

	t.Run("find by id", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`FROM properties p\s+WHERE p.property_id = `).
			WithArgs("p-1").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("p-1", "Villa", (*string)(nil), int64(450000), "Nice", &rooms, (*int32)(nil), (*int32)(nil), now, now))

		repo := newPgxPropertyRepository(mock)
		prop, err := repo.FindPropertyByID(context.Background(), "p-1")

		require.NoError(t, err)
		assert.Equal(t, "Villa", prop.Title)
		assert.Equal(t, int64(450000), prop.Price)
		assert.Equal(t, int32(4), *prop.Rooms)
		assert.Nil(t, prop.Bathrooms)
	})

	t.Run("update missing row", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE properties`).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := newPgxPropertyRepository(mock)
		err := repo.UpdateProperty(context.Background(), domain.Property{PropertyID: "p-9", Title: "x", Location: "y"})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`DELETE FROM properties`).WithArgs("p-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := newPgxPropertyRepository(mock)
		assert.NoError(t, repo.DeleteProperty(context.Background(), "p-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
