package domain

import "time"

// TokenClaims is the claim set carried by an access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}
