package domain

import "time"

// TokenClaims is the payload embedded in a session token. Verification
// requires no server-side lookup: the signature and expiry travel with the
// token itself.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}
