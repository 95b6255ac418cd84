// Package common defines the error taxonomy shared by the server services,
// the HTTP layer and the client. Callers should use errors.Is to match
// against the sentinel values.
package common

import "errors"

var (
	// ErrValidation marks malformed or missing input. The request is the
	// caller's fault; retrying it unchanged is pointless.
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a uniqueness violation (email or username already
	// taken). The caller should resubmit with different values.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized covers bad credentials and missing or invalid session
	// tokens. Its message must never reveal which part of the credentials
	// failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a missing resource. A resource owned by another user
	// is reported with this same error so note ids cannot be probed.
	ErrNotFound = errors.New("not found")

	// ErrInternal hides storage and other unexpected failures from callers.
	// The underlying cause is logged server-side only.
	ErrInternal = errors.New("internal error")
)

// kindError carries a user-facing message on top of one of the taxonomy
// sentinels, so errors.Is still matches the sentinel while Error() yields
// the exact text the API should return.
type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// E builds an error of the given kind with a user-facing message.
func E(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}
