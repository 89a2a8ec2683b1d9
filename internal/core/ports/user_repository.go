package ports

import (
	"context"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

// UserPatch carries the fields a profile update may change. Nil fields are
// left untouched.
type UserPatch struct {
	Name           *string
	Email          *string
	Rating         *float64
	CompletedTasks *int
	MoneySaved     *int
}

// UserRepository defines the credential-store contract. Email and username
// lookups are case-insensitive exact matches; both columns are unique.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Insert fails with ErrEmailTaken or ErrUsernameTaken on collision.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update merges patch into the stored record; ErrUserNotFound if absent.
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
