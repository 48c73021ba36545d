package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hollowtree/accesslog/internal/domain"
)

// Record creates a new access log entry, applying defaults for unset
// fields, and returns the persisted entry. Recording an id that already
// exists fails with domain.ErrAlreadyExists.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.LogEntry, error) {
	e := &domain.LogEntry{
		ID:           input.ID,
		Scope:        input.Scope,
		RemoteOrigin: input.RemoteOrigin,
		SubjectID:    input.SubjectID,
		ObjectID:     input.ObjectID,
	}

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if input.CreationTime != nil {
		e.CreationTime = *input.CreationTime
	} else {
		e.CreationTime = s.now().Unix()
	}
	if !e.RemoteOrigin.IsValid() {
		e.RemoteOrigin = s.defaultOrigin
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("record access log: %w", err)
	}

	s.log.InfoContext(ctx, "access log recorded",
		slog.String("log_id", e.ID.String()),
		slog.String("scope", e.Scope),
		slog.Int64("creation_time", e.CreationTime),
	)

	return e, nil
}

// Delete removes an entry by id. Deleting an absent id is not an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete access log: %w", err)
	}

	s.log.InfoContext(ctx, "access log deleted", slog.String("log_id", id.String()))
	return nil
}
