package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/core/ports"
)

func insertUser(t *testing.T, repo *UserRepository, username, email string) *domain.User {
	t.Helper()
	created, err := repo.Insert(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		Name:         "Test",
		Role:         domain.RoleUser,
		PasswordHash: "hash",
		Rating:       5.0,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert %s: %v", username, err)
	}
	return created
}

func TestInsert_AssignsID(t *testing.T) {
	repo := NewUserRepository()
	created := insertUser(t, repo, "alice", "alice@x.com")
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestInsert_DuplicateCaseInsensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	insertUser(t, repo, "alice", "alice@x.com")

	_, err := repo.Insert(ctx, &domain.User{Username: "other", Email: "Alice@X.Com"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	_, err = repo.Insert(ctx, &domain.User{Username: "ALICE", Email: "new@x.com"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestFind_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	created := insertUser(t, repo, "alice", "alice@x.com")

	byEmail, err := repo.FindByEmail(ctx, "ALICE@x.com")
	if err != nil || byEmail.ID != created.ID {
		t.Fatalf("find by email: %v, %+v", err, byEmail)
	}
	byUsername, err := repo.FindByUsername(ctx, "Alice")
	if err != nil || byUsername.ID != created.ID {
		t.Fatalf("find by username: %v, %+v", err, byUsername)
	}
	if _, err := repo.FindByEmail(ctx, "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdate_MergesPatch(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	created := insertUser(t, repo, "alice", "alice@x.com")

	name := "New Name"
	tasks := 7
	saved := 120
	updated, err := repo.Update(ctx, created.ID, ports.UserPatch{
		Name:           &name,
		CompletedTasks: &tasks,
		MoneySaved:     &saved,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "New Name" || updated.CompletedTasks != 7 || updated.MoneySaved != 120 {
		t.Fatalf("patch not applied: %+v", updated)
	}
	// untouched fields survive
	if updated.Email != "alice@x.com" || updated.Username != "alice" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewUserRepository()
	name := "x"
	if _, err := repo.Update(context.Background(), "missing", ports.UserPatch{Name: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdate_EmailCollision(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	insertUser(t, repo, "alice", "alice@x.com")
	bob := insertUser(t, repo, "bob", "bob@x.com")

	taken := "ALICE@x.com"
	if _, err := repo.Update(ctx, bob.ID, ports.UserPatch{Email: &taken}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestFind_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	created := insertUser(t, repo, "alice", "alice@x.com")

	found, _ := repo.FindByID(ctx, created.ID)
	found.Name = "mutated"

	again, _ := repo.FindByID(ctx, created.ID)
	if again.Name == "mutated" {
		t.Fatalf("repository leaked internal state")
	}
}

func TestList_ReturnsAll(t *testing.T) {
	repo := NewUserRepository()
	insertUser(t, repo, "alice", "alice@x.com")
	insertUser(t, repo, "bob", "bob@x.com")

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
