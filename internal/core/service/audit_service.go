package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events to the
// audit trail. Failures are reported to the caller (the dispatcher), which
// logs them; they never propagate to the originating request.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("audit insert: %w", err)
	}

	s.log.Debug().
		Str("email", event.Email).
		Str("action", string(event.Action)).
		Bool("success", event.Success).
		Msg("auth event recorded")

	return nil
}
