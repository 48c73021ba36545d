package testhelper

import (
	"context"
	"net/netip"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollowtree/accesslog/internal/domain"
)

// SeedLog inserts an access_logs row directly, bypassing the repository.
// Zero-value fields fall back to test defaults: a fresh id, loopback origin.
func SeedLog(t *testing.T, pool *pgxpool.Pool, e domain.LogEntry) domain.LogEntry {
	t.Helper()
	ctx := context.Background()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if !e.RemoteOrigin.IsValid() {
		e.RemoteOrigin = netip.MustParseAddr("127.0.0.1")
	}

	origin, err := domain.OriginBytes(e.RemoteOrigin)
	if err != nil {
		t.Fatalf("testhelper: SeedLog origin: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO access_logs (id, creation_time, scope, remote_origin, subject_id, object_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.CreationTime, e.Scope, origin, e.SubjectID, e.ObjectID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLog insert: %v", err)
	}

	return e
}
