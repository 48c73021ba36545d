package audit

import (
	"context"
	"fmt"
	"log/slog"
)

// Prune bulk-deletes dated entries and returns the number removed.
// Entries with creation_time 0 are never pruned. A nil cutoff removes
// every dated entry; otherwise only entries strictly older than the
// cutoff go.
func (s *Service) Prune(ctx context.Context, createdBefore *int64) (int64, error) {
	n, err := s.store.Prune(ctx, createdBefore)
	if err != nil {
		return 0, fmt.Errorf("prune access logs: %w", err)
	}

	attrs := []any{slog.Int64("deleted", n)}
	if createdBefore != nil {
		attrs = append(attrs, slog.Int64("created_before", *createdBefore))
	}
	s.log.InfoContext(ctx, "access logs pruned", attrs...)

	return n, nil
}
