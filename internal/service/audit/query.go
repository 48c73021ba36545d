package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hollowtree/accesslog/internal/domain"
)

// Get returns a single entry by id. An absent id is not an error: the
// result is nil, nil.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.LogEntry, error) {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get access log: %w", err)
	}
	return e, nil
}

// Search returns the entries matching the filter, ordered and paginated.
func (s *Service) Search(ctx context.Context, f domain.LogFilter) (*domain.Collection, error) {
	logs, err := s.store.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search access logs: %w", err)
	}
	return logs, nil
}

// Count returns the number of entries matching the filter.
func (s *Service) Count(ctx context.Context, f domain.LogFilter) (int64, error) {
	n, err := s.store.Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("count access logs: %w", err)
	}
	return n, nil
}

// UniqueScopes returns every distinct scope in use, sorted ascending.
func (s *Service) UniqueScopes(ctx context.Context) ([]string, error) {
	scopes, err := s.store.UniqueScopes(ctx)
	if err != nil {
		return nil, fmt.Errorf("unique scopes: %w", err)
	}
	return scopes, nil
}
