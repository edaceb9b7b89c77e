package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserService) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockHistoryService struct {
	mock.Mock
}

func (m *mockHistoryService) RecordPasswordChange(ctx context.Context, userID, hashedPassword, reason, ipAddress string) (*domain.PasswordHistoryEntry, error) {
	args := m.Called(ctx, userID, hashedPassword, reason, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordHistoryEntry), args.Error(1)
}

func (m *mockHistoryService) GetPasswordHistory(ctx context.Context, userID string, limit int) ([]domain.PasswordHistoryEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PasswordHistoryEntry), args.Error(1)
}

func (m *mockHistoryService) GetLatestPasswordChange(ctx context.Context, userID string) (*domain.PasswordHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordHistoryEntry), args.Error(1)
}

func (m *mockHistoryService) PurgePasswordHistory(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

var alice = &domain.User{
	UserID:     "8f14e45f-ceea-467f-a8c3-1c5a3b0e1f2d",
	Username:   "alice",
	Email:      "alice@example.com",
	IsActive:   true,
	Timestamps: domain.Timestamps{CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
}

func runCmd(t *testing.T, users *mockUserService, history *mockHistoryService, args ...string) (string, error) {
	t.Helper()
	a := &app{
		users:   users,
		history: history,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUsersList(t *testing.T) {
	users, history := new(mockUserService), new(mockHistoryService)
	users.On("ListUsers", mock.Anything, 20, 0).Return([]domain.User{*alice}, nil).Once()
	users.On("ListUsers", mock.Anything, 5, 40).Return([]domain.User{}, nil).Once()

	out, err := runCmd(t, users, history, "users", "list")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`(?m)^ID\s+USERNAME\s+EMAIL`), out)
	assert.Contains(t, out, "alice@example.com")

	out, err = runCmd(t, users, history, "users", "list", "--limit", "5", "--offset", "40")
	require.NoError(t, err)
	assert.Equal(t, "No users found.\n", out)

	users.AssertExpectations(t)
}

func TestUsersList_JSON(t *testing.T) {
	users, history := new(mockUserService), new(mockHistoryService)
	users.On("ListUsers", mock.Anything, 20, 0).Return([]domain.User{*alice}, nil).Once()

	out, err := runCmd(t, users, history, "users", "list", "--json")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"8f14e45f-ceea-467f-a8c3-1c5a3b0e1f2d","username":"alice","email":"alice@example.com","is_active":true,"created_at":"2024-01-02T03:04:05Z"}]`, out)
}

func TestUsersCount(t *testing.T) {
	users, history := new(mockUserService), new(mockHistoryService)
	users.On("CountUsers", mock.Anything).Return(int64(3), nil).Once()

	out, err := runCmd(t, users, history, "users", "count")

	require.NoError(t, err)
	assert.Equal(t, "3 user(s)\n", out)
}

func TestUsersFind(t *testing.T) {
	users, history := new(mockUserService), new(mockHistoryService)
	reason := "registration"
	users.On("GetUserByUsername", mock.Anything, "alice").Return(alice, nil).Once()
	users.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	history.On("GetLatestPasswordChange", mock.Anything, alice.UserID).
		Return(&domain.PasswordHistoryEntry{ChangedAt: alice.CreatedAt, Reason: &reason}, nil).Once()

	out, err := runCmd(t, users, history, "users", "find", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Username:  alice")
	assert.Contains(t, out, "Password:  changed 2024-01-02T03:04:05Z (registration)")

	_, err = runCmd(t, users, history, "users", "find", "ghost")
	assert.EqualError(t, err, `user "ghost" not found`)
}

func TestUsersDelete_RequiresConfirmation(t *testing.T) {
	users, history := new(mockUserService), new(mockHistoryService)

	_, err := runCmd(t, users, history, "users", "delete", "alice")

	assert.ErrorIs(t, err, errNotConfirmed)
	users.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestUsersDelete(t *testing.T) {
	users, history := new(mockUserService), new(mockHistoryService)
	users.On("GetUserByUsername", mock.Anything, "alice").Return(alice, nil).Once()
	users.On("DeleteUser", mock.Anything, alice.UserID).Return(nil).Once()

	out, err := runCmd(t, users, history, "users", "delete", "alice", "--yes")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted user alice")
	users.AssertExpectations(t)
}

func TestHistoryShow(t *testing.T) {
	users, history := new(mockUserService), new(mockHistoryService)
	reason, ip := "manual_change", "192.0.2.1"
	users.On("GetUserByUsername", mock.Anything, "alice").Return(alice, nil).Once()
	history.On("GetPasswordHistory", mock.Anything, alice.UserID, 3).Return([]domain.PasswordHistoryEntry{
		{ChangedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Reason: &reason, IPAddress: &ip},
		{ChangedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
	}, nil).Once()

	out, err := runCmd(t, users, history, "history", "show", "alice", "--limit", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "2024-06-01T00:00:00Z")
	assert.Contains(t, out, "manual_change")
	assert.Contains(t, out, "192.0.2.1")
	history.AssertExpectations(t)
}

func TestHistoryPurge(t *testing.T) {
	users, history := new(mockUserService), new(mockHistoryService)
	users.On("GetUserByUsername", mock.Anything, "alice").Return(alice, nil).Once()
	history.On("PurgePasswordHistory", mock.Anything, alice.UserID).Return(int64(4), nil).Once()

	_, err := runCmd(t, users, history, "history", "purge", "alice")
	assert.ErrorIs(t, err, errNotConfirmed)

	out, err := runCmd(t, users, history, "history", "purge", "alice", "-y")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 4 history entr(ies) of alice\n", out)
}

func TestGenSecret(t *testing.T) {
	out, err := runCmd(t, nil, nil, "gen-secret", "--bytes", "16")

	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{32}\n$`, out)

	out, err = runCmd(t, nil, nil, "gen-secret", "--encoding", "base64url")
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Za-z0-9_-]{43}\n$`, out)

	_, err = runCmd(t, nil, nil, "gen-secret", "--bytes", "4")
	assert.Error(t, err)
}
