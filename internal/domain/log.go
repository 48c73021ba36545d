// Package domain holds the access log entities shared by all layers:
// the LogEntry record, the ordered Collection returned by searches, the
// typed LogFilter, and origin byte-form helpers.
package domain

import (
	"net/netip"

	"github.com/google/uuid"
)

// ScopeMaxLen bounds the scope column; it matches the VARCHAR(16) schema.
const ScopeMaxLen = 16

// LogEntry is one recorded event. ID and CreationTime are immutable once
// persisted; SubjectID, ObjectID and RemoteOrigin may later be rewritten by
// anonymization. uuid.Nil in SubjectID/ObjectID means "none".
type LogEntry struct {
	ID           uuid.UUID
	CreationTime int64
	Scope        string
	RemoteOrigin netip.Addr
	SubjectID    uuid.UUID
	ObjectID     uuid.UUID
}

// Validate checks the entry against the persisted row constraints.
func (e *LogEntry) Validate() error {
	var errs []FieldError

	if e.CreationTime < 0 {
		errs = append(errs, FieldError{Field: "creation_time", Message: "must not be negative"})
	}
	if len(e.Scope) > ScopeMaxLen {
		errs = append(errs, FieldError{Field: "scope", Message: "max 16 characters"})
	}
	if !e.RemoteOrigin.IsValid() {
		errs = append(errs, FieldError{Field: "remote_origin", Message: "required"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
