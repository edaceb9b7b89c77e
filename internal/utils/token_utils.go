package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SigningMethod resolves a configured HMAC algorithm name. Unknown names fall back to HS256.
func SigningMethod(alg string) jwt.SigningMethod {
	switch alg {
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

// GenerateJWT signs a token carrying only the subject and expiry claims.
func GenerateJWT(subject string, secret string, alg string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(SigningMethod(alg), claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and expiry.
// Only the configured algorithm is accepted and the exp claim is mandatory.
func ParseAndValidateJWT(tokenString string, secretKey string, alg string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	method := SigningMethod(alg)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{method.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
