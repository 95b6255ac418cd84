package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the persisted user record. Email and username are stored
// case-preserved together with lowercased copies; the lowered copies exist
// solely to enforce case-insensitive uniqueness and to serve lookups.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FullName      string             `bson:"full_name"`
	DOB           time.Time          `bson:"dob"`
	Email         string             `bson:"email"`
	EmailLower    string             `bson:"email_lower"`
	Username      string             `bson:"username"`
	UsernameLower string             `bson:"username_lower"`
	PasswordHash  string             `bson:"password_hash"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// PublicUser is the projection of a User that is safe to return to clients.
// The password hash never leaves the service.
type PublicUser struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID.Hex(),
		FullName: u.FullName,
		Username: u.Username,
		Email:    u.Email,
	}
}
