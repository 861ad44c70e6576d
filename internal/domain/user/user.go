package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/biztime"
)

// User is the account aggregate. Identity issuance lives in the auth
// infrastructure; the aggregate only carries role and credential hash.
type User struct {
	id           uint
	fullName     string
	email        string
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(fullName, email, passwordHash string, role authorization.UserRole) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if len(fullName) > 100 {
		return nil, fmt.Errorf("full name exceeds maximum length of 100 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	fullName, email, passwordHash string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateProfile(fullName, email string) error {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(fullName) == 0 {
		return fmt.Errorf("full name is required")
	}
	if len(fullName) > 100 {
		return fmt.Errorf("full name exceeds maximum length of 100 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}

	u.fullName = fullName
	u.email = email
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangePasswordHash(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}

	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
	return nil
}
