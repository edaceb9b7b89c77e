package services

import (
	"context"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	"github.com/SscSPs/immobilier_backend/internal/dto"
)

// PasswordCodecSvc hashes and verifies passwords.
type PasswordCodecSvc interface {
	// Hash normalizes and hashes a password with a fresh salt.
	Hash(ctx context.Context, password string) (string, error)
	// Verify reports whether password matches hash. Internal failures are logged and reported as false.
	Verify(ctx context.Context, password, hash string) bool
}

// TokenSvcFacade issues and verifies access tokens.
type TokenSvcFacade interface {
	// IssueAccessToken signs claims with an expiry of now+ttl. A non-positive ttl uses the configured default.
	IssueAccessToken(ctx context.Context, claims domain.TokenClaims, ttl time.Duration) (string, time.Time, error)
	// VerifyAccessToken returns the decoded claims, or nil when the token is unusable for any reason.
	VerifyAccessToken(ctx context.Context, token string) *domain.TokenClaims
}

// AuthSvcFacade orchestrates registration, login and token-gated user resolution.
type AuthSvcFacade interface {
	// Register creates the user and its first password history entry atomically.
	Register(ctx context.Context, req dto.RegisterRequest, ipAddress string) (*domain.User, error)
	// Login checks credentials and returns the user with a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
	// AuthenticateToken resolves the user a bearer token was issued for.
	AuthenticateToken(ctx context.Context, token string) (*domain.User, error)
	// ChangePassword replaces the user's password and records the change atomically.
	ChangePassword(ctx context.Context, user *domain.User, req dto.ChangePasswordRequest, ipAddress string) error
}
