package ports

import (
	"context"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

// AuditSink accepts auth events for asynchronous recording. Enqueue must not
// block request handling beyond the sink's buffer capacity.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuditService records a single auth event.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository persists auth events to the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}
