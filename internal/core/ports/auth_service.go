package ports

import (
	"context"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

// RegisterInput carries the public registration fields. Role is optional and
// restricted to the registrable set; empty defaults to "user".
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Role     string
	RemoteIP string
}

// AuthResult is returned by Login and Register: a signed token, the
// sanitized user, and the role-derived dashboard path.
type AuthResult struct {
	Token       string
	User        *domain.User
	RedirectURL string
}

// AuthService defines the authentication use cases.
type AuthService interface {
	Login(ctx context.Context, email, password, remoteIP string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	// VerifyToken returns the current user record for a valid token, fresh
	// from the store so profile edits are reflected.
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
	// Logout is a stateless acknowledgment; when a revocation list is
	// configured the token's id is denylisted until its embedded expiry.
	Logout(ctx context.Context, token, remoteIP string) error
	UpdateProfile(ctx context.Context, userID string, patch UserPatch) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
