package audit

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"

	"github.com/google/uuid"

	"github.com/hollowtree/accesslog/internal/domain"
)

// AnonymizeID rewrites every reference to oldID — as subject and as
// object — to newID, atomically. When newID is uuid.Nil a fresh random
// id is generated. Returns the replacement id and the number of
// rewritten rows.
func (s *Service) AnonymizeID(ctx context.Context, oldID, newID uuid.UUID) (uuid.UUID, int64, error) {
	if oldID == uuid.Nil {
		return uuid.Nil, 0, domain.NewValidationError("id", "required")
	}
	if newID == uuid.Nil {
		newID = uuid.New()
	}

	var total int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.store.ReplaceSubjectID(ctx, oldID, newID)
		if err != nil {
			return fmt.Errorf("replace subject id: %w", err)
		}
		total += n

		n, err = s.store.ReplaceObjectID(ctx, oldID, newID)
		if err != nil {
			return fmt.Errorf("replace object id: %w", err)
		}
		total += n

		return nil
	})
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("anonymize id: %w", err)
	}

	s.log.InfoContext(ctx, "id anonymized",
		slog.String("old_id", oldID.String()),
		slog.String("new_id", newID.String()),
		slog.Int64("rewritten", total),
	)

	return newID, total, nil
}

// AnonymizeOrigins coarsens the stored origin of every entry in logs:
// IPv4 addresses lose their low 16 bits, IPv6 addresses their low 80
// bits. Updates are applied atomically and the in-memory entries are
// mutated to match. Fails before writing anything if an entry carries
// an address of an unsupported family.
func (s *Service) AnonymizeOrigins(ctx context.Context, logs *domain.Collection) error {
	entries := logs.Ordered()

	masked := make([]netip.Addr, len(entries))
	for i, e := range entries {
		m, err := domain.MaskOrigin(e.RemoteOrigin)
		if err != nil {
			return fmt.Errorf("anonymize origin of %s: %w", e.ID, err)
		}
		masked[i] = m
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for i, e := range entries {
			if err := s.store.UpdateRemoteOrigin(ctx, e.ID, masked[i]); err != nil {
				return fmt.Errorf("update origin of %s: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("anonymize origins: %w", err)
	}

	for i, e := range entries {
		e.RemoteOrigin = masked[i]
	}

	s.log.InfoContext(ctx, "origins anonymized", slog.Int("entries", len(entries)))
	return nil
}
