package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/immobilier_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
)

// Detail messages surfaced to clients on authentication failures.
const (
	MsgAlreadyRegistered     = "Username or email already registered"
	MsgInvalidCredentials    = "Invalid username or password"
	MsgInvalidOrExpiredToken = "Invalid or expired token"
	MsgInvalidToken          = "Invalid token"
	MsgUserNotFound          = "User not found"
)

type authService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	historyRepo portsrepo.PasswordHistoryRepositoryFacade
	codec       portssvc.PasswordCodecSvc
	tokens      portssvc.TokenSvcFacade
	now         func() time.Time
}

// NewAuthService wires registration and login over the credential store.
func NewAuthService(
	userRepo portsrepo.UserRepositoryFacade,
	historyRepo portsrepo.PasswordHistoryRepositoryFacade,
	codec portssvc.PasswordCodecSvc,
	tokens portssvc.TokenSvcFacade,
) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		codec:       codec,
		tokens:      tokens,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// inTx runs fn in a transaction that is rolled back unless fn and the commit succeed.
func (s *authService) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.userRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.userRepo.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if err := fn(tx); err != nil {
		return err
	}
	return s.userRepo.Commit(ctx, tx)
}

func (s *authService) newHistoryEntry(userID, hash, reason, ipAddress string, at time.Time) domain.PasswordHistoryEntry {
	entry := domain.PasswordHistoryEntry{
		HistoryID:      ulid.Make().String(),
		UserID:         userID,
		HashedPassword: hash,
		ChangedAt:      at,
		Reason:         &reason,
	}
	if ipAddress != "" {
		entry.IPAddress = &ipAddress
	}
	return entry
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest, ipAddress string) (*domain.User, error) {
	logger := s.GetLogger(ctx).With(slog.String("username", req.Username))

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, req.Username, req.Email)
	switch {
	case err == nil && existing != nil:
		logger.Warn("Registration rejected: username or email already registered")
		return nil, apperrors.NewConflictError(MsgAlreadyRegistered)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}

	hash, err := s.codec.Hash(ctx, req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
		IsActive:       true,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	entry := s.newHistoryEntry(user.UserID, hash, domain.PasswordChangeReasonRegistration, ipAddress, now)

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.userRepo.SaveUserInTx(ctx, tx, user); err != nil {
			return err
		}
		return s.historyRepo.SavePasswordHistoryInTx(ctx, tx, entry)
	})
	if err != nil {
		if apperrors.IsConflict(err) {
			logger.Warn("Registration lost a uniqueness race")
			return nil, apperrors.NewConflictError(MsgAlreadyRegistered)
		}
		s.LogError(ctx, err, "Registration failed", slog.String("username", req.Username))
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	logger := s.GetLogger(ctx).With(slog.String("username", req.Username))

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Login failed: unknown username")
			return nil, "", apperrors.NewUnauthorizedError(MsgInvalidCredentials)
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.codec.Verify(ctx, req.Password, user.HashedPassword) {
		logger.Warn("Login failed: wrong password")
		return nil, "", apperrors.NewUnauthorizedError(MsgInvalidCredentials)
	}

	token, _, err := s.tokens.IssueAccessToken(ctx, domain.TokenClaims{Subject: user.Username}, 0)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue access token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}

func (s *authService) AuthenticateToken(ctx context.Context, token string) (*domain.User, error) {
	claims := s.tokens.VerifyAccessToken(ctx, token)
	if claims == nil {
		return nil, apperrors.NewUnauthorizedError(MsgInvalidOrExpiredToken)
	}
	if claims.Subject == "" {
		return nil, apperrors.NewUnauthorizedError(MsgInvalidToken)
	}

	user, err := s.userRepo.FindUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to look up token subject: %w", err)
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, user *domain.User, req dto.ChangePasswordRequest, ipAddress string) error {
	if !s.codec.Verify(ctx, req.CurrentPassword, user.HashedPassword) {
		s.LogWarn(ctx, "Password change rejected: wrong current password", slog.String("user_id", user.UserID))
		return apperrors.NewUnauthorizedError(MsgInvalidCredentials)
	}

	hash, err := s.codec.Hash(ctx, req.NewPassword)
	if err != nil {
		return err
	}

	now := s.now()
	updated := *user
	updated.HashedPassword = hash
	updated.UpdatedAt = now
	entry := s.newHistoryEntry(user.UserID, hash, domain.PasswordChangeReasonManual, ipAddress, now)

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.userRepo.UpdateUserPasswordInTx(ctx, tx, updated); err != nil {
			return err
		}
		return s.historyRepo.SavePasswordHistoryInTx(ctx, tx, entry)
	})
	if err != nil {
		s.LogError(ctx, err, "Password change failed", slog.String("user_id", user.UserID))
		return err
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", user.UserID))
	return nil
}
