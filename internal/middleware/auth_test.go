package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/SscSPs/immobilier_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func TestRequireUser(t *testing.T) {
	alice := &domain.User{UserID: "user-1", Username: "alice"}
	authSvc := new(MockAuthService)
	authSvc.On("AuthenticateToken", mock.Anything, "good").Return(alice, nil)
	authSvc.On("AuthenticateToken", mock.Anything, "expired").Return(nil, apperrors.NewUnauthorizedError("Invalid or expired token"))
	authSvc.On("AuthenticateToken", mock.Anything, "orphan").Return(nil, apperrors.NewUnauthorizedError("User not found"))
	authSvc.On("AuthenticateToken", mock.Anything, "db-down").Return(nil, assert.AnError)

	router := gin.New()
	router.GET("/me", middleware.RequireUser(authSvc), func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantDetail string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantDetail: "Missing authorization header"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid authorization header format"},
		{name: "no token", header: "Bearer", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid authorization header format"},
		{name: "expired token", header: "Bearer expired", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid or expired token"},
		{name: "deleted user", header: "Bearer orphan", wantStatus: http.StatusUnauthorized, wantDetail: "User not found"},
		{name: "store failure", header: "Bearer db-down", wantStatus: http.StatusInternalServerError, wantDetail: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"username":"alice"}`, w.Body.String())
				return
			}
			assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
