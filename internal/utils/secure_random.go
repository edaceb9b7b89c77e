package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Supported encodings for GenerateSecret.
const (
	SecretEncodingHex       = "hex"
	SecretEncodingBase64URL = "base64url"
)

// GenerateSecret reads size random bytes and encodes them as hex or unpadded base64url.
// It backs the admin gen-secret command used to seed JWT_SECRET.
func GenerateSecret(size int, encoding string) (string, error) {
	if size < 16 {
		return "", fmt.Errorf("secret size must be at least 16 bytes, got %d", size)
	}

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	switch encoding {
	case SecretEncodingHex:
		return hex.EncodeToString(b), nil
	case SecretEncodingBase64URL:
		return base64.RawURLEncoding.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("unknown secret encoding %q", encoding)
	}
}
