// Package accesslog implements the access log store using PostgreSQL.
// Records are append-mostly: besides inserts the store only supports
// deletion (single and bulk pruning) and the narrow updates needed for
// anonymization.
package accesslog

import (
	"context"
	"fmt"
	"net/netip"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hollowtree/accesslog/internal/adapter/postgres"
	"github.com/hollowtree/accesslog/internal/domain"
)

const table = "access_logs"

var columns = []string{"id", "creation_time", "scope", "remote_origin", "subject_id", "object_id"}

// Repo provides access log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new access log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record. A record with the same id must not exist:
// the preflight count catches collisions early with a clean error, and the
// primary key constraint remains the authoritative guard under concurrency.
// Both paths surface domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.LogEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := r.Count(ctx, domain.LogFilter{IDs: []uuid.UUID{e.ID}})
	if err != nil {
		return fmt.Errorf("preflight access_log %s: %w", e.ID, err)
	}
	if n > 0 {
		return fmt.Errorf("access_log %s: %w", e.ID, domain.ErrAlreadyExists)
	}

	origin, err := domain.OriginBytes(e.RemoteOrigin)
	if err != nil {
		return fmt.Errorf("access_log %s: %w", e.ID, err)
	}

	sqlStr, args, err := builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.CreationTime, e.Scope, origin, e.SubjectID, e.ObjectID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert access_log: %w", err)
	}

	if _, err := q.Exec(ctx, sqlStr, args...); err != nil {
		return mapError(err, "access_log", e.ID)
	}
	return nil
}

// Delete removes a record by id. Deleting an absent id is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sqlStr, args, err := builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete access_log: %w", err)
	}

	if _, err := q.Exec(ctx, sqlStr, args...); err != nil {
		return mapError(err, "access_log", id)
	}
	return nil
}

// Prune bulk-deletes old records and returns the number of rows removed.
// Records with creation_time = 0 are exempt: the zero value marks entries
// that were deliberately stored without a timestamp and must survive
// retention sweeps. When createdBefore is nil every dated record goes.
func (r *Repo) Prune(ctx context.Context, createdBefore *int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	del := builder().
		Delete(table).
		Where(sq.NotEq{"creation_time": 0})
	if createdBefore != nil {
		del = del.Where(sq.Lt{"creation_time": *createdBefore})
	}

	sqlStr, args, err := del.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build prune access_logs: %w", err)
	}

	tag, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("prune access_logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ReplaceSubjectID rewrites all records referencing oldID as subject to
// reference newID. Returns the number of rewritten rows.
func (r *Repo) ReplaceSubjectID(ctx context.Context, oldID, newID uuid.UUID) (int64, error) {
	return r.replaceID(ctx, "subject_id", oldID, newID)
}

// ReplaceObjectID rewrites all records referencing oldID as object to
// reference newID. Returns the number of rewritten rows.
func (r *Repo) ReplaceObjectID(ctx context.Context, oldID, newID uuid.UUID) (int64, error) {
	return r.replaceID(ctx, "object_id", oldID, newID)
}

func (r *Repo) replaceID(ctx context.Context, column string, oldID, newID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sqlStr, args, err := builder().
		Update(table).
		Set(column, newID).
		Where(sq.Eq{column: oldID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build replace %s: %w", column, err)
	}

	tag, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, mapError(err, "access_log", oldID)
	}
	return tag.RowsAffected(), nil
}

// UpdateRemoteOrigin overwrites the stored origin of a single record.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) UpdateRemoteOrigin(ctx context.Context, id uuid.UUID, origin netip.Addr) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := domain.OriginBytes(origin)
	if err != nil {
		return fmt.Errorf("access_log %s: %w", id, err)
	}

	sqlStr, args, err := builder().
		Update(table).
		Set("remote_origin", b).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update remote_origin: %w", err)
	}

	tag, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapError(err, "access_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("access_log %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single record. An absent id is not an error:
// the result is nil, nil.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LogEntry, error) {
	logs, err := r.Search(ctx, domain.LogFilter{IDs: []uuid.UUID{id}})
	if err != nil {
		return nil, err
	}
	return logs.Get(id), nil
}

// Search returns the records matching the filter, ordered and paginated,
// materialized as a domain.Collection in result order.
func (r *Repo) Search(ctx context.Context, f domain.LogFilter) (*domain.Collection, error) {
	f.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder().Select(columns...).From(table)
	query, err := applyConditions(query, f)
	if err != nil {
		return nil, err
	}
	query = applySort(query, f)
	query = applyPagination(query, f)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search access_logs: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("search access_logs: %w", err)
	}
	defer rows.Close()

	logs := domain.NewCollection()
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		logs.Add(e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search access_logs: %w", err)
	}

	return logs, nil
}

// Count returns the number of records matching the filter. Sorting and
// pagination in the filter are ignored.
func (r *Repo) Count(ctx context.Context, f domain.LogFilter) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder().Select("count(id)").From(table)
	query, err := applyConditions(query, f)
	if err != nil {
		return 0, err
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count access_logs: %w", err)
	}

	var count int64
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count access_logs: %w", err)
	}
	return count, nil
}

// UniqueScopes returns every distinct scope present in the store,
// sorted ascending.
func (r *Repo) UniqueScopes(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sqlStr, args, err := builder().
		Select("scope").
		From(table).
		GroupBy("scope").
		OrderBy("scope ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build unique scopes: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("unique scopes: %w", err)
	}
	defer rows.Close()

	var scopes []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan scope: %w", err)
		}
		scopes = append(scopes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unique scopes: %w", err)
	}

	return scopes, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// scanEntry reads one row in the columns order into a domain.LogEntry.
func scanEntry(row pgx.Row) (*domain.LogEntry, error) {
	var (
		e      domain.LogEntry
		origin []byte
	)
	if err := row.Scan(&e.ID, &e.CreationTime, &e.Scope, &origin, &e.SubjectID, &e.ObjectID); err != nil {
		return nil, fmt.Errorf("scan access_log: %w", err)
	}

	addr, err := domain.OriginFromBytes(origin)
	if err != nil {
		return nil, fmt.Errorf("access_log %s: %w", e.ID, err)
	}
	e.RemoteOrigin = addr

	return &e, nil
}
