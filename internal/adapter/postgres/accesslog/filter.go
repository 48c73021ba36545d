package accesslog

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/hollowtree/accesslog/internal/domain"
)

// builder returns a statement builder configured for PostgreSQL placeholders.
func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// conditions translates a domain.LogFilter into squirrel predicates.
// Every set key contributes exactly one predicate; predicates are ANDed
// by the caller. An empty filter yields no predicates (match all).
func conditions(f domain.LogFilter) ([]sq.Sqlizer, error) {
	var conds []sq.Sqlizer

	if len(f.IDs) > 0 {
		conds = append(conds, sq.Eq{"id": f.IDs})
	}

	if f.Created != nil {
		conds = append(conds, sq.Eq{"creation_time": *f.Created})
	}
	// Cutoffs are strict: rows exactly at the boundary are excluded.
	if f.CreatedAfter != nil {
		conds = append(conds, sq.Gt{"creation_time": *f.CreatedAfter})
	}
	if f.CreatedBefore != nil {
		conds = append(conds, sq.Lt{"creation_time": *f.CreatedBefore})
	}

	if len(f.Scopes) > 0 {
		conds = append(conds, sq.Eq{"scope": f.Scopes})
	}

	if len(f.RemoteOrigins) > 0 {
		// Origins are stored in their 16-byte form, so filter values must
		// be converted the same way before comparison.
		origins := make([][]byte, len(f.RemoteOrigins))
		for i, addr := range f.RemoteOrigins {
			b, err := domain.OriginBytes(addr)
			if err != nil {
				return nil, fmt.Errorf("filter remote_origin %s: %w", addr, err)
			}
			origins[i] = b
		}
		conds = append(conds, sq.Eq{"remote_origin": origins})
	}

	if len(f.SubjectIDs) > 0 {
		conds = append(conds, sq.Eq{"subject_id": f.SubjectIDs})
	}
	if len(f.ObjectIDs) > 0 {
		conds = append(conds, sq.Eq{"object_id": f.ObjectIDs})
	}

	return conds, nil
}

// applyConditions ANDs the filter predicates onto a SELECT builder.
func applyConditions(query sq.SelectBuilder, f domain.LogFilter) (sq.SelectBuilder, error) {
	conds, err := conditions(f)
	if err != nil {
		return query, err
	}
	for _, c := range conds {
		query = query.Where(c)
	}
	return query, nil
}

// applySort appends ORDER BY clauses. When sorting on a non-unique column
// the id is added as a tie-breaker so the order is total and pagination
// is stable.
func applySort(query sq.SelectBuilder, f domain.LogFilter) sq.SelectBuilder {
	query = query.OrderBy(f.SortBy + " " + f.SortOrder)
	if f.SortBy != domain.SortByID {
		query = query.OrderBy("id " + f.SortOrder)
	}
	return query
}

// applyPagination appends LIMIT/OFFSET. PerPage <= 0 means no pagination.
func applyPagination(query sq.SelectBuilder, f domain.LogFilter) sq.SelectBuilder {
	if f.PerPage <= 0 {
		return query
	}
	query = query.Limit(uint64(f.PerPage))
	if f.Page > 0 {
		query = query.Offset(uint64(f.Page) * uint64(f.PerPage))
	}
	return query
}
