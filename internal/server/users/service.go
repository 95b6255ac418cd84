// Package users implements registration, login and username availability
// against the credential store.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/retronotes/retronotes/internal/common"
	"github.com/retronotes/retronotes/internal/server/auth"
	"github.com/retronotes/retronotes/internal/server/config"
)

const (
	maxFullNameLen = 120
	maxEmailLen    = 160
	maxUsernameLen = 40
)

// RegisterInput carries the raw registration form fields.
type RegisterInput struct {
	FullName        string
	DOB             string
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// AuthResult is returned by Register and Login: the public user projection
// plus a signed session token.
type AuthResult struct {
	User  *PublicUser
	Token string
}

type Service struct {
	repo                        Repository
	bcryptCost                  int
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		bcryptCost:                  cfg.BcryptCost,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// CheckUsername reports whether the username is still available. The check
// is case-insensitive and has no side effects.
func (s *Service) CheckUsername(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, ErrUsernameRequired
	}

	exists, err := s.repo.UsernameExists(ctx, strings.ToLower(username))
	if err != nil {
		return false, fmt.Errorf("username lookup: %w", common.ErrInternal)
	}

	return !exists, nil
}

// Register validates the input, checks both lowered identity values for
// uniqueness, hashes the password and persists the new user. A uniqueness
// violation surfacing from the store itself (two registrations racing past
// the pre-check) is reported exactly like a pre-check hit.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	fullName := strings.TrimSpace(in.FullName)
	dob := strings.TrimSpace(in.DOB)
	email := strings.TrimSpace(in.Email)
	username := strings.TrimSpace(in.Username)

	if fullName == "" || dob == "" || email == "" || username == "" ||
		in.Password == "" || in.ConfirmPassword == "" {
		return nil, ErrAllFieldsRequired
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	dobDate, err := parseDOB(dob)
	if err != nil {
		return nil, ErrInvalidDOB
	}

	switch {
	case len(fullName) > maxFullNameLen:
		return nil, ErrFullNameTooLong
	case len(email) > maxEmailLen:
		return nil, ErrEmailTooLong
	case len(username) > maxUsernameLen:
		return nil, ErrUsernameTooLong
	}

	emailLower := strings.ToLower(email)
	usernameLower := strings.ToLower(username)

	taken, err := s.repo.IdentityExists(ctx, emailLower, usernameLower)
	if err != nil {
		return nil, fmt.Errorf("identity pre-check: %w", common.ErrInternal)
	}
	if taken {
		return nil, ErrIdentityTaken
	}

	passwordHash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", common.ErrInternal)
	}

	user, err := s.repo.Create(ctx, &User{
		FullName:      fullName,
		DOB:           dobDate,
		Email:         email,
		EmailLower:    emailLower,
		Username:      username,
		UsernameLower: usernameLower,
		PasswordHash:  passwordHash,
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, ErrIdentityTaken
		}
		return nil, fmt.Errorf("create user: %w", common.ErrInternal)
	}

	return s.authResult(user)
}

// Login authenticates by email or username. Unknown identifier and wrong
// password produce the identical ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || password == "" {
		return nil, ErrIdentifierRequired
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("user lookup: %w", common.ErrInternal)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.authResult(user)
}

func (s *Service) authResult(user *User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token generation: %w", common.ErrInternal)
	}
	return &AuthResult{User: user.Public(), Token: token}, nil
}

// parseDOB accepts a calendar date, optionally with a time component, the
// two shapes date pickers commonly submit.
func parseDOB(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
