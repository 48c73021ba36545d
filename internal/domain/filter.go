package domain

import (
	"net/netip"

	"github.com/google/uuid"
)

// LogFilter contains filtering, sorting and pagination parameters for log
// searches. Filter fields combine with logical AND; multiple values under one
// field are a membership test (OR). Nil/empty fields are ignored.
type LogFilter struct {
	// IDs restricts results to the given record ids.
	IDs []uuid.UUID

	// Created matches creation_time exactly.
	// CreatedAfter/CreatedBefore are strict cutoffs (> and <).
	Created       *int64
	CreatedAfter  *int64
	CreatedBefore *int64

	// Scopes is an exact-match set on the scope column.
	Scopes []string

	// RemoteOrigins matches the fixed 16-byte origin form exactly.
	RemoteOrigins []netip.Addr

	SubjectIDs []uuid.UUID
	ObjectIDs  []uuid.UUID

	// SortBy is one of "creation_time" (default) or "id". Any other value
	// falls back to the default. Ties are always broken by id so the order
	// is total and pagination is stable.
	SortBy string

	// SortOrder: "ASC" (default) or "DESC".
	SortOrder string

	// Page is the zero-based page number; ignored when PerPage is 0.
	Page int

	// PerPage is the page size. 0 returns all matching rows.
	PerPage int
}

const (
	SortByCreationTime = "creation_time"
	SortByID           = "id"

	SortOrderASC  = "ASC"
	SortOrderDESC = "DESC"
)

// Normalize applies defaults and clamps values.
func (f *LogFilter) Normalize() {
	switch f.SortBy {
	case SortByCreationTime, SortByID:
		// valid
	default:
		f.SortBy = SortByCreationTime
	}

	switch f.SortOrder {
	case SortOrderASC, SortOrderDESC:
		// valid
	default:
		f.SortOrder = SortOrderASC
	}

	if f.Page < 0 {
		f.Page = 0
	}
	if f.PerPage < 0 {
		f.PerPage = 0
	}
}
