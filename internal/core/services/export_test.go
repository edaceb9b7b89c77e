package services

import (
	"time"

	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/platform/config"
	"github.com/prometheus/client_golang/prometheus"
)

// NewTokenServiceWithClock lets tests control the issue time.
func NewTokenServiceWithClock(cfg *config.Config, now func() time.Time) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, now: now}
}

// PasswordVerificationsCounter exposes the verification outcome counter.
func PasswordVerificationsCounter() *prometheus.CounterVec {
	return passwordVerifications
}
