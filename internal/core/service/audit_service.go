package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that logs every auth event and,
// when repo is non-nil, persists it to the audit trail. Persistence failures
// are logged and swallowed: the audit trail is best-effort.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.AuthEvent) error {
	s.log.Info().
		Str("action", event.Action).
		Str("user_id", event.UserID).
		Str("email", event.Email).
		Str("remote_ip", event.RemoteIP).
		Time("at", event.Timestamp).
		Msg("auth event")

	if s.repo == nil {
		return nil
	}
	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		s.log.Warn().Err(err).Str("action", event.Action).Msg("failed to persist auth event")
	}
	return nil
}
