package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/SscSPs/immobilier_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPasswordHistoryService_RecordPasswordChange(t *testing.T) {
	tests := []struct {
		name       string
		reason     string
		ipAddress  string
		wantReason string
		wantIP     *string
	}{
		{name: "explicit reason and ip", reason: domain.PasswordChangeReasonReset, ipAddress: "203.0.113.9", wantReason: "password_reset", wantIP: ptr("203.0.113.9")},
		{name: "defaults to manual change", reason: "", ipAddress: "", wantReason: "manual_change", wantIP: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockPasswordHistoryRepository)
			svc := services.NewPasswordHistoryService(repo)
			repo.On("SavePasswordHistory", ctx, mock.AnythingOfType("domain.PasswordHistoryEntry")).Return(nil).Once()

			entry, err := svc.RecordPasswordChange(ctx, "user-1", "$2a$04$hash", tt.reason, tt.ipAddress)

			require.NoError(t, err)
			assert.Len(t, entry.HistoryID, 26)
			assert.Equal(t, "user-1", entry.UserID)
			assert.Equal(t, "$2a$04$hash", entry.HashedPassword)
			assert.Equal(t, tt.wantReason, *entry.Reason)
			assert.Equal(t, tt.wantIP, entry.IPAddress)
			assert.WithinDuration(t, time.Now(), entry.ChangedAt, 5*time.Second)
			repo.AssertExpectations(t)
		})
	}
}

func TestPasswordHistoryService_RecordPasswordChange_UnknownUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPasswordHistoryRepository)
	svc := services.NewPasswordHistoryService(repo)
	repo.On("SavePasswordHistory", ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	entry, err := svc.RecordPasswordChange(ctx, "missing", "hash", "", "")

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPasswordHistoryService_GetPasswordHistory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPasswordHistoryRepository)
	svc := services.NewPasswordHistoryService(repo)

	now := time.Now().UTC()
	entries := []domain.PasswordHistoryEntry{
		{HistoryID: "02", UserID: "user-1", ChangedAt: now},
		{HistoryID: "01", UserID: "user-1", ChangedAt: now.Add(-time.Hour)},
	}
	repo.On("FindPasswordHistory", ctx, "user-1", 10).Return(entries, nil).Once()
	repo.On("FindPasswordHistory", ctx, "user-2", 10).Return(nil, nil).Once()
	repo.On("FindPasswordHistory", ctx, "user-3", 5).Return(nil, assert.AnError).Once()

	got, err := svc.GetPasswordHistory(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	empty, err := svc.GetPasswordHistory(ctx, "user-2", 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svc.GetPasswordHistory(ctx, "user-3", 5)
	assert.ErrorIs(t, err, assert.AnError)

	repo.AssertExpectations(t)
}

func TestPasswordHistoryService_GetLatestPasswordChange(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPasswordHistoryRepository)
	svc := services.NewPasswordHistoryService(repo)

	latest := &domain.PasswordHistoryEntry{HistoryID: "02", UserID: "user-1"}
	repo.On("FindLatestPasswordHistory", ctx, "user-1").Return(latest, nil).Once()
	repo.On("FindLatestPasswordHistory", ctx, "user-2").Return(nil, apperrors.ErrNotFound).Once()

	got, err := svc.GetLatestPasswordChange(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, latest, got)

	_, err = svc.GetLatestPasswordChange(ctx, "user-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPasswordHistoryService_PurgePasswordHistory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPasswordHistoryRepository)
	svc := services.NewPasswordHistoryService(repo)

	repo.On("DeletePasswordHistory", ctx, "user-1").Return(int64(3), nil).Once()
	repo.On("DeletePasswordHistory", ctx, "user-2").Return(int64(0), assert.AnError).Once()

	deleted, err := svc.PurgePasswordHistory(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	_, err = svc.PurgePasswordHistory(ctx, "user-2")
	assert.Error(t, err)
}
