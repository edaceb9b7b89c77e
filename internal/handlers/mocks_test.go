package handlers_test

import (
	"context"

	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest, ipAddress string) (*domain.User, error) {
	args := m.Called(ctx, req, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) AuthenticateToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, user *domain.User, req dto.ChangePasswordRequest, ipAddress string) error {
	args := m.Called(ctx, user, req, ipAddress)
	return args.Error(0)
}

// --- Mock PasswordHistoryService ---
type MockPasswordHistoryService struct {
	mock.Mock
}

var _ portssvc.PasswordHistorySvcFacade = (*MockPasswordHistoryService)(nil)

func (m *MockPasswordHistoryService) RecordPasswordChange(ctx context.Context, userID, hashedPassword, reason, ipAddress string) (*domain.PasswordHistoryEntry, error) {
	args := m.Called(ctx, userID, hashedPassword, reason, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordHistoryEntry), args.Error(1)
}

func (m *MockPasswordHistoryService) GetPasswordHistory(ctx context.Context, userID string, limit int) ([]domain.PasswordHistoryEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PasswordHistoryEntry), args.Error(1)
}

func (m *MockPasswordHistoryService) GetLatestPasswordChange(ctx context.Context, userID string) (*domain.PasswordHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordHistoryEntry), args.Error(1)
}

func (m *MockPasswordHistoryService) PurgePasswordHistory(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PropertyService ---
type MockPropertyService struct {
	mock.Mock
}

var _ portssvc.PropertySvcFacade = (*MockPropertyService)(nil)

func (m *MockPropertyService) ListProperties(ctx context.Context, skip, limit int) ([]domain.Property, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyService) GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	args := m.Called(ctx, propertyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}
