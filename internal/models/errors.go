package models

import "errors"

// Validation errors are caller-correctable and map to 4xx responses with a
// readable reason. Infrastructure errors map to generic 5xx responses
// without leaking internal detail. Nothing is ever swallowed or silently
// recovered from.
var (
	// ErrInvalidAmount means the amount is missing, zero, or negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDescription means a required description is empty after
	// trimming.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrInvalidParticipantSet means an expense names no participants.
	ErrInvalidParticipantSet = errors.New("invalid participant set")

	// ErrUnknownUser means a user reference resolved to nothing.
	ErrUnknownUser = errors.New("unknown user")

	// ErrAmbiguousUser means a name matched more than one user.
	ErrAmbiguousUser = errors.New("ambiguous user")

	// ErrSameUser means a transfer's source and target are the same user.
	ErrSameUser = errors.New("source and target must be different users")

	// ErrNotFound means a lookup by id found nothing.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable means the persistent store failed. The request is
	// not retried; the caller may retry the whole request.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsValidationError reports whether err is one of the caller-correctable
// validation failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidDescription) ||
		errors.Is(err, ErrInvalidParticipantSet) ||
		errors.Is(err, ErrUnknownUser) ||
		errors.Is(err, ErrAmbiguousUser) ||
		errors.Is(err, ErrSameUser)
}
