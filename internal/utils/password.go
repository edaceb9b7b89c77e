package utils

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// NormalizePassword truncates password to at most MaxPasswordBytes bytes without
// splitting a multi-byte character. Inputs that already fit are returned unchanged,
// so hashing and verification always see the same bytes.
func NormalizePassword(password string) string {
	if len(password) <= MaxPasswordBytes {
		return password
	}
	truncated := password[:MaxPasswordBytes]
	for len(truncated) > 0 {
		if utf8.ValidString(truncated) {
			return truncated
		}
		truncated = truncated[:len(truncated)-1]
	}
	return ""
}

// HashPassword normalizes a plaintext password and hashes it with bcrypt using a
// fresh random salt. Failures wrap apperrors.ErrHashing.
func HashPassword(password string, cost int) (string, error) {
	if !utf8.ValidString(password) {
		return "", fmt.Errorf("%w: password is not valid UTF-8", apperrors.ErrHashing)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(NormalizePassword(password)), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrHashing, err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a bcrypt hash.
// A plain mismatch is (false, nil); an unusable stored hash is (false, err).
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(NormalizePassword(password)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("malformed password hash: %w", err)
	}
}
