package users

import "context"

// Repository is the persistence contract for user records. Identifier
// arguments are expected already lowercased.
type Repository interface {
	// Create persists a new user and returns it with the generated id.
	// A uniqueness violation is reported as ErrIdentityTaken.
	Create(ctx context.Context, user *User) (*User, error)

	// FindByIdentifier looks up a user whose lowered email or lowered
	// username equals identifierLower. Returns common.ErrNotFound on miss.
	FindByIdentifier(ctx context.Context, identifierLower string) (*User, error)

	// UsernameExists reports whether a user with the lowered username exists.
	UsernameExists(ctx context.Context, usernameLower string) (bool, error)

	// IdentityExists reports whether either the lowered email or the lowered
	// username is already in use.
	IdentityExists(ctx context.Context, emailLower, usernameLower string) (bool, error)
}
