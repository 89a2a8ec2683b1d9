package ports

import "github.com/dailydone/marketplace-api/internal/core/domain"

// TokenCodec signs and verifies session tokens. Issue embeds the expiry so
// Verify needs no server-side state; Verify returns ErrTokenInvalid for
// tampered, malformed, or expired tokens.
type TokenCodec interface {
	Issue(claims domain.TokenClaims) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}
