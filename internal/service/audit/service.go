// Package audit implements access log business operations: recording,
// retrieval, rate-limit cooldown checks, retention pruning, and
// anonymization of identities and network origins.
package audit

import (
	"context"
	"log/slog"
	"net/netip"
	"time"

	"github.com/google/uuid"

	"github.com/hollowtree/accesslog/internal/domain"
)

// logStore defines the access log repository interface needed by the service.
type logStore interface {
	Create(ctx context.Context, e *domain.LogEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LogEntry, error)
	Search(ctx context.Context, f domain.LogFilter) (*domain.Collection, error)
	Count(ctx context.Context, f domain.LogFilter) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Prune(ctx context.Context, createdBefore *int64) (int64, error)
	UniqueScopes(ctx context.Context) ([]string, error)
	ReplaceSubjectID(ctx context.Context, oldID, newID uuid.UUID) (int64, error)
	ReplaceObjectID(ctx context.Context, oldID, newID uuid.UUID) (int64, error)
	UpdateRemoteOrigin(ctx context.Context, id uuid.UUID, origin netip.Addr) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements access log operations.
type Service struct {
	log           *slog.Logger
	store         logStore
	tx            txManager
	defaultOrigin netip.Addr

	// now is swapped out in tests.
	now func() time.Time
}

// NewService creates a new audit service instance. defaultOrigin is used
// for records and cooldown checks that do not carry an explicit origin.
func NewService(
	logger *slog.Logger,
	store logStore,
	tx txManager,
	defaultOrigin netip.Addr,
) *Service {
	return &Service{
		log:           logger.With("service", "audit"),
		store:         store,
		tx:            tx,
		defaultOrigin: defaultOrigin,
		now:           time.Now,
	}
}
