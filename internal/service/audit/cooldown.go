package audit

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"

	"github.com/google/uuid"

	"github.com/hollowtree/accesslog/internal/domain"
)

// Cooldown reports whether an action is rate-limited: true when at least
// input.Amount records with the given scope were created within
// input.Period, counted back from now.
//
// Two axes are checked in order. First the remote origin (the explicit
// one, or the configured default), then — only if a subject is given —
// the subject id. Either axis reaching the threshold engages the
// cooldown, so an actor cannot dodge it by switching addresses.
func (s *Service) Cooldown(ctx context.Context, input CooldownInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	// The window is strict: records created exactly at now-period do
	// not count.
	after := s.now().Add(-input.Period).Unix()

	origin := input.RemoteOrigin
	if !origin.IsValid() {
		origin = s.defaultOrigin
	}

	count, err := s.store.Count(ctx, domain.LogFilter{
		Scopes:        []string{input.Scope},
		RemoteOrigins: []netip.Addr{origin},
		CreatedAfter:  &after,
	})
	if err != nil {
		return false, fmt.Errorf("cooldown count by origin: %w", err)
	}
	if count >= input.Amount {
		s.log.InfoContext(ctx, "cooldown engaged",
			slog.String("scope", input.Scope),
			slog.String("axis", "remote_origin"),
			slog.Int64("count", count),
		)
		return true, nil
	}

	if input.SubjectID == uuid.Nil {
		return false, nil
	}

	count, err = s.store.Count(ctx, domain.LogFilter{
		Scopes:       []string{input.Scope},
		SubjectIDs:   []uuid.UUID{input.SubjectID},
		CreatedAfter: &after,
	})
	if err != nil {
		return false, fmt.Errorf("cooldown count by subject: %w", err)
	}
	if count >= input.Amount {
		s.log.InfoContext(ctx, "cooldown engaged",
			slog.String("scope", input.Scope),
			slog.String("axis", "subject_id"),
			slog.Int64("count", count),
		)
		return true, nil
	}

	return false, nil
}
