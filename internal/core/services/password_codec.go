package services

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	verifyOutcomeMatch    = "match"
	verifyOutcomeMismatch = "mismatch"
	verifyOutcomeError    = "error"
)

// passwordVerifications counts verification outcomes. Callers only ever see a bool,
// so malformed stored hashes are only visible here and in the logs.
var passwordVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "immobilier_password_verifications_total",
	Help: "Total number of password verifications by outcome",
}, []string{"outcome"})

type passwordCodecService struct {
	BaseService
	cost int
}

// NewPasswordCodecService creates a codec hashing with the given bcrypt cost.
func NewPasswordCodecService(cost int) portssvc.PasswordCodecSvc {
	return &passwordCodecService{cost: cost}
}

func (s *passwordCodecService) Hash(ctx context.Context, password string) (string, error) {
	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return "", err
	}
	return hash, nil
}

func (s *passwordCodecService) Verify(ctx context.Context, password, hash string) bool {
	ok, err := utils.VerifyPassword(password, hash)
	switch {
	case err != nil:
		passwordVerifications.WithLabelValues(verifyOutcomeError).Inc()
		s.LogError(ctx, err, "Password verification failed on stored hash", slog.Int("hash_length", len(hash)))
		return false
	case !ok:
		passwordVerifications.WithLabelValues(verifyOutcomeMismatch).Inc()
		s.LogDebug(ctx, "Password mismatch")
		return false
	default:
		passwordVerifications.WithLabelValues(verifyOutcomeMatch).Inc()
		return true
	}
}
