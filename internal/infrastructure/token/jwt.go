// Package token implements the session-token codec: a compact HS256-signed
// claims payload with embedded expiry, verifiable without server-side state.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

const defaultTTL = 7 * 24 * time.Hour

// JWTCodec signs and verifies session tokens with a shared secret.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec returns a codec issuing tokens valid for ttl. A zero ttl falls
// back to the 7-day default.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl}
}

func (c *JWTCodec) Issue(claims domain.TokenClaims) (string, error) {
	now := time.Now()
	exp := claims.ExpiresAt
	if exp.IsZero() {
		exp = now.Add(c.ttl)
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": claims.UserID,
		"email":   claims.Email,
		"role":    claims.Role,
		"jti":     claims.TokenID,
		"iat":     now.Unix(),
		"exp":     exp.Unix(),
	})
	return t.SignedString(c.secret)
}

// Verify recomputes the signature and checks the embedded expiry. Every
// failure collapses to ErrTokenInvalid so callers produce a uniform response.
func (c *JWTCodec) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	tokenID, _ := claims["jti"].(string)
	if userID == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.TokenClaims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenID:   tokenID,
		ExpiresAt: exp.Time,
	}, nil
}
