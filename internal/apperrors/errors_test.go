package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestConflictErrorMatchesDuplicate(t *testing.T) {
	err := fmt.Errorf("saving user: %w", apperrors.NewConflictError("username taken"))

	assert.True(t, apperrors.IsConflict(err))
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestValidationFailedError(t *testing.T) {
	err := apperrors.NewValidationFailedError("limit must be positive")

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Contains(t, err.Error(), "limit must be positive")
}

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", apperrors.NewAppError(500, "boom", nil).Error())
	assert.Equal(t, "boom: cause", apperrors.NewAppError(500, "boom", errors.New("cause")).Error())
}

func TestUnauthorizedError(t *testing.T) {
	err := fmt.Errorf("resolving user: %w", apperrors.NewUnauthorizedError("User not found"))

	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	assert.Equal(t, "User not found", appErr.Message)
}
