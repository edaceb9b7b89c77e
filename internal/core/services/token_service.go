package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/platform/config"
	"github.com/SscSPs/immobilier_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade with stateless signed JWTs.
// There is no revocation list: a token is valid until it expires.
type tokenService struct {
	BaseService
	cfg *config.Config
	now func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, now: time.Now}
}

func (s *tokenService) IssueAccessToken(ctx context.Context, claims domain.TokenClaims, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.cfg.JWTExpiryDuration
	}
	expiresAt := s.now().Add(ttl)

	token, err := utils.GenerateJWT(claims.Subject, s.cfg.JWTSecret, s.cfg.JWTAlgorithm, expiresAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("subject", claims.Subject))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *tokenService) VerifyAccessToken(ctx context.Context, token string) *domain.TokenClaims {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTAlgorithm)
	if err != nil {
		s.LogDebug(ctx, "Access token rejected", slog.String("reason", err.Error()))
		return nil
	}

	out := &domain.TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out
}
