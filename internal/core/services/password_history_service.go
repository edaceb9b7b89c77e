package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/immobilier_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/oklog/ulid/v2"
)

type passwordHistoryService struct {
	BaseService
	historyRepo portsrepo.PasswordHistoryRepositoryFacade
	now         func() time.Time
}

// NewPasswordHistoryService creates the password audit trail service.
func NewPasswordHistoryService(historyRepo portsrepo.PasswordHistoryRepositoryFacade) portssvc.PasswordHistorySvcFacade {
	return &passwordHistoryService{
		historyRepo: historyRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *passwordHistoryService) RecordPasswordChange(ctx context.Context, userID, hashedPassword, reason, ipAddress string) (*domain.PasswordHistoryEntry, error) {
	if reason == "" {
		reason = domain.PasswordChangeReasonManual
	}
	entry := domain.PasswordHistoryEntry{
		HistoryID:      ulid.Make().String(),
		UserID:         userID,
		HashedPassword: hashedPassword,
		ChangedAt:      s.now(),
		Reason:         &reason,
	}
	if ipAddress != "" {
		entry.IPAddress = &ipAddress
	}

	if err := s.historyRepo.SavePasswordHistory(ctx, entry); err != nil {
		s.LogError(ctx, err, "Error recording password change", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Password change recorded", slog.String("user_id", userID), slog.String("reason", reason))
	return &entry, nil
}

func (s *passwordHistoryService) GetPasswordHistory(ctx context.Context, userID string, limit int) ([]domain.PasswordHistoryEntry, error) {
	entries, err := s.historyRepo.FindPasswordHistory(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Error fetching password history", slog.String("user_id", userID))
		return nil, err
	}
	if entries == nil {
		entries = []domain.PasswordHistoryEntry{}
	}
	return entries, nil
}

func (s *passwordHistoryService) GetLatestPasswordChange(ctx context.Context, userID string) (*domain.PasswordHistoryEntry, error) {
	entry, err := s.historyRepo.FindLatestPasswordHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest password change: %w", err)
	}
	return entry, nil
}

func (s *passwordHistoryService) PurgePasswordHistory(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.historyRepo.DeletePasswordHistory(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Error clearing password history", slog.String("user_id", userID))
		return 0, err
	}
	s.LogWarn(ctx, "Password history cleared", slog.String("user_id", userID), slog.Int64("deleted", deleted))
	return deleted, nil
}
