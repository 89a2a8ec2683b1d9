// Package seed provisions initial accounts through the credential-store
// port, so it works against any repository backend.
package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/core/ports"
)

type seedUser struct {
	username       string
	email          string
	name           string
	role           string
	password       string
	rating         float64
	completedTasks int
	moneySaved     int
}

// Demo accounts for local development, mirroring the marketplace's stock
// profiles. Passwords are hashed at seed time.
var demoUsers = []seedUser{
	{"demo", "demo@dailydone.com", "Demo User", domain.RoleUser, "Demo123!", 4.8, 15, 2340},
	{"user", "user@example.com", "John Doe", domain.RoleUser, "Password123!", 5.0, 8, 1200},
	{"admin", "admin@dailydone.com", "Admin Helper", domain.RoleHelper, "Admin123!", 4.9, 42, 0},
}

// SeedDemoUsers inserts the demo accounts, skipping any that already exist.
func SeedDemoUsers(ctx context.Context, repo ports.UserRepository) error {
	for i, su := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed %s: %w", su.username, err)
		}
		_, err = repo.Insert(ctx, &domain.User{
			ID:             fmt.Sprintf("%d", i+1),
			Username:       su.username,
			Email:          su.email,
			Name:           su.name,
			Role:           su.role,
			PasswordHash:   string(hash),
			Rating:         su.rating,
			CompletedTasks: su.completedTasks,
			MoneySaved:     su.moneySaved,
			CreatedAt:      time.Now().UTC(),
		})
		if err != nil && err != domain.ErrEmailTaken && err != domain.ErrUsernameTaken {
			return fmt.Errorf("seed %s: %w", su.username, err)
		}
	}
	return nil
}

// SeedAdmin provisions the out-of-band admin account. Public registration
// never accepts the admin role; this is the only way one is created.
func SeedAdmin(ctx context.Context, repo ports.UserRepository, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	_, err = repo.Insert(ctx, &domain.User{
		Username:     username,
		Email:        email,
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
		PasswordHash: string(hash),
		Rating:       5.0,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil && err != domain.ErrEmailTaken && err != domain.ErrUsernameTaken {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
