package election

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Create stores a new PENDING election.
func (s *Service) Create(ctx context.Context, in CreateInput, creatorID uuid.UUID) (domain.Election, error) {
	if err := in.Validate(); err != nil {
		return domain.Election{}, err
	}

	created, err := s.elections.Create(ctx, domain.Election{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartAt:     in.StartAt.UTC(),
		EndAt:       in.EndAt.UTC(),
		Status:      domain.ElectionStatusPending,
		CreatedBy:   creatorID,
	})
	if err != nil {
		return domain.Election{}, fmt.Errorf("create election: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:    domain.AuditElectionCreated,
		ActorID:   &creatorID,
		SubjectID: &created.ID,
		Detail:    map[string]any{"title": created.Title},
	})
	s.log.InfoContext(ctx, "election created", slog.String("election_id", created.ID.String()))
	return created, nil
}
