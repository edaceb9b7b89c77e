package services

import (
	portsrepo "github.com/SscSPs/immobilier_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.PasswordCodec = NewPasswordCodecService(cfg.PasswordHashCost)
	container.Token = NewTokenService(cfg)
	container.User = NewUserService(repos.UserRepo)
	container.PasswordHistory = NewPasswordHistoryService(repos.PasswordHistoryRepo)
	container.Property = NewPropertyService(repos.PropertyRepo)
	container.Auth = NewAuthService(
		repos.UserRepo,
		repos.PasswordHistoryRepo,
		container.PasswordCodec,
		container.Token,
	)

	return container
}
