package service

import "errors"

// Error kinds returned by the services. The handler layer maps each kind to
// an HTTP status; services never see status codes.
var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing user, message or relationship, including
	// lookups scoped by ownership that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a relationship creation racing an existing edge.
	ErrConflict = errors.New("conflict")

	// ErrPermissionDenied marks blocked-pair messaging and non-owner deletes.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnauthorized marks failed credential checks on the login path.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a user-facing message tagged with one of the kind sentinels,
// so callers can branch with errors.Is while the message stays intact.
type Error struct {
	kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == e.kind }

// ValidationError builds an ErrValidation-kinded error.
func ValidationError(message string) error {
	return &Error{kind: ErrValidation, Message: message}
}

// NotFoundError builds an ErrNotFound-kinded error.
func NotFoundError(message string) error {
	return &Error{kind: ErrNotFound, Message: message}
}

// ConflictError builds an ErrConflict-kinded error.
func ConflictError(message string) error {
	return &Error{kind: ErrConflict, Message: message}
}

// PermissionError builds an ErrPermissionDenied-kinded error.
func PermissionError(message string) error {
	return &Error{kind: ErrPermissionDenied, Message: message}
}

// UnauthorizedError builds an ErrUnauthorized-kinded error.
func UnauthorizedError(message string) error {
	return &Error{kind: ErrUnauthorized, Message: message}
}
