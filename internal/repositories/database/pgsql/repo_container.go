package pgsql

import (
	portsrepo "github.com/SscSPs/immobilier_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool DBPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:            newPgxUserRepository(dbPool),
		PasswordHistoryRepo: newPgxPasswordHistoryRepository(dbPool),
		PropertyRepo:        newPgxPropertyRepository(dbPool),
	}
}
