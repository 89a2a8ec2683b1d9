package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

type stubAuditRepo struct {
	events []*domain.AuthEvent
	err    error
}

func (r *stubAuditRepo) InsertEvent(_ context.Context, event *domain.AuthEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func TestAuditService_PersistsEvent(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := domain.AuthEvent{UserID: "u1", Action: domain.AuditLogin, Timestamp: time.Now()}
	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if len(repo.events) != 1 || repo.events[0].Action != domain.AuditLogin {
		t.Fatalf("event not persisted: %+v", repo.events)
	}
}

func TestAuditService_NilRepoLogsOnly(t *testing.T) {
	svc := NewAuditService(nil, zerolog.Nop())
	if err := svc.Record(context.Background(), domain.AuthEvent{Action: domain.AuditLogout}); err != nil {
		t.Fatalf("record failed: %v", err)
	}
}

func TestAuditService_SwallowsPersistenceFailure(t *testing.T) {
	repo := &stubAuditRepo{err: errors.New("write failed")}
	svc := NewAuditService(repo, zerolog.Nop())
	if err := svc.Record(context.Background(), domain.AuthEvent{Action: domain.AuditLogin}); err != nil {
		t.Fatalf("expected persistence failure to be swallowed, got %v", err)
	}
}
