package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

type recordingService struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *recordingService) Record(_ context.Context, event domain.AuthEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingService) snapshot() []domain.AuthEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuthEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuthEvent{UserID: "u1", Action: domain.AuditLogin})
	d.Enqueue(domain.AuthEvent{UserID: "u2", Action: domain.AuditRegister})
	d.Enqueue(domain.AuthEvent{Email: "ghost@x.com", Action: domain.AuditLoginFailed})

	waitFor(t, func() bool { return len(svc.snapshot()) == 3 })
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		action := domain.AuditLogin
		if i%2 == 1 {
			action = domain.AuditLogout
		}
		d.Enqueue(domain.AuthEvent{UserID: "u1", Action: action, Timestamp: time.Unix(int64(i), 0)})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == n })

	// Same user key always hashes to the same worker, so order is preserved.
	events := svc.snapshot()
	for i, e := range events {
		if e.Timestamp.Unix() != int64(i) {
			t.Fatalf("event %d out of order: got ts %d", i, e.Timestamp.Unix())
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
