package audit

import (
	"net/netip"
	"time"

	"github.com/google/uuid"

	"github.com/hollowtree/accesslog/internal/domain"
)

// RecordInput holds the parameters for recording an access log entry.
// Unset fields fall back to service defaults: a fresh id, the current
// time, and the configured default origin.
type RecordInput struct {
	// ID of the new record. uuid.Nil means generate one.
	ID uuid.UUID

	// CreationTime as a Unix timestamp. nil means now. An explicit 0
	// marks the record as undated, exempting it from pruning.
	CreationTime *int64

	// Scope tags the action being logged, e.g. "login".
	Scope string

	// RemoteOrigin of the actor. The zero value means use the
	// configured default origin.
	RemoteOrigin netip.Addr

	// SubjectID is the acting identity, ObjectID the acted-upon one.
	// Either may be uuid.Nil.
	SubjectID uuid.UUID
	ObjectID  uuid.UUID
}

// CooldownInput holds the parameters for a cooldown check.
type CooldownInput struct {
	// Scope restricts the check to one kind of action.
	Scope string

	// Amount is the number of records within Period at which the
	// cooldown engages.
	Amount int64

	// Period is the length of the sliding window, counted back from now.
	Period time.Duration

	// RemoteOrigin to check. The zero value means use the configured
	// default origin.
	RemoteOrigin netip.Addr

	// SubjectID to check in addition to the origin. uuid.Nil skips the
	// subject axis.
	SubjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CooldownInput) Validate() error {
	var errs []domain.FieldError

	if i.Scope == "" {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "required"})
	}
	if len(i.Scope) > domain.ScopeMaxLen {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "max 16 characters"})
	}
	if i.Amount < 1 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be at least 1"})
	}
	if i.Period <= 0 {
		errs = append(errs, domain.FieldError{Field: "period", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
