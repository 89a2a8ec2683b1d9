// Package memory provides the default in-process credential store.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/core/ports"
)

// UserRepository keeps user records in a mutex-guarded slice. The duplicate
// check and insert happen under one write lock, so concurrent registrations
// with the same username or email cannot both succeed.
type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u := r.byID(id); u != nil {
		return clone(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, domain.ErrEmailTaken
		}
		if strings.EqualFold(u.Username, user.Username) {
			return nil, domain.ErrUsernameTaken
		}
	}

	stored := clone(user)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.users = append(r.users, stored)
	return clone(stored), nil
}

func (r *UserRepository) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.byID(id)
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if patch.Email != nil {
		for _, other := range r.users {
			if other.ID != id && strings.EqualFold(other.Email, *patch.Email) {
				return nil, domain.ErrEmailTaken
			}
		}
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Rating != nil {
		u.Rating = *patch.Rating
	}
	if patch.CompletedTasks != nil {
		u.CompletedTasks = *patch.CompletedTasks
	}
	if patch.MoneySaved != nil {
		u.MoneySaved = *patch.MoneySaved
	}

	return clone(u), nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, clone(u))
	}
	return out, nil
}

// byID must be called with the lock held.
func (r *UserRepository) byID(id string) *domain.User {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func clone(u *domain.User) *domain.User {
	c := *u
	return &c
}
