package domain

import "fmt"

// Domain errors returned by the booking workflow and its collaborators.
// Every error carries enough detail to render an actionable message;
// anything outside this taxonomy is an infrastructure fault and is not
// shown to callers verbatim.

// ValidationError covers malformed or out-of-range input: bad duration,
// missing required evidence, an unknown status value.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// DurationError is the policy failure for a rental span outside the
// configured bounds. It is a validation failure at the API boundary.
type DurationError struct {
	Days    int
	MinDays int
	MaxDays int
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("rental duration must be between %d and %d days, got %d", e.MinDays, e.MaxDays, e.Days)
}

// DuplicateError is the yearly-uniqueness failure: the (property, user,
// year) tuple already has a rental. It is returned both by the optimistic
// pre-check and by the storage layer when its unique constraint rejects a
// concurrent insert, so racing callers see the same typed result.
type DuplicateError struct {
	PropertyID int32
	UserID     int32
	Year       int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("property %d already rented by user %d in %d", e.PropertyID, e.UserID, e.Year)
}

// ForbiddenError means the actor is not the rental's owner or lacks the
// admin role for the operation.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func NewForbiddenError(format string, args ...any) *ForbiddenError {
	return &ForbiddenError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError means the referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}
