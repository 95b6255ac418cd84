package users

import "github.com/retronotes/retronotes/internal/common"

var (
	ErrUsernameRequired   = common.E(common.ErrValidation, "Username is required")
	ErrAllFieldsRequired  = common.E(common.ErrValidation, "All fields are required")
	ErrPasswordMismatch   = common.E(common.ErrValidation, "Passwords do not match")
	ErrInvalidDOB         = common.E(common.ErrValidation, "Invalid date of birth")
	ErrFullNameTooLong    = common.E(common.ErrValidation, "Full name must be 120 characters or fewer")
	ErrEmailTooLong       = common.E(common.ErrValidation, "Email must be 160 characters or fewer")
	ErrUsernameTooLong    = common.E(common.ErrValidation, "Username must be 40 characters or fewer")
	ErrIdentifierRequired = common.E(common.ErrValidation, "Email or username and password required")

	// ErrIdentityTaken covers both the application-level pre-check and a
	// unique-index violation surfacing from the store on insert.
	ErrIdentityTaken = common.E(common.ErrConflict, "Email or username already in use")

	// ErrInvalidCredentials is returned for an unknown identifier and for a
	// wrong password alike, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = common.E(common.ErrUnauthorized, "Invalid credentials")
)
