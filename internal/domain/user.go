package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an authenticated login identity.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Role returns the token role for the user.
func (u *User) Role() UserRole {
	if u.IsAdmin {
		return UserRoleAdmin
	}
	return UserRoleOperator
}

// Operator is a user provisioned to label sentences.
// There is at most one Operator per User.
type Operator struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string // joined from users, empty when not loaded
	CreatedAt time.Time
}

// Permission grants one operator access to one dataset.
type Permission struct {
	ID         uuid.UUID
	DatasetID  uuid.UUID
	OperatorID uuid.UUID
	CreatedAt  time.Time
}

// NormalizeUsername trims and lowercases a login name so that lookups are
// case-insensitive.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PermissionFilter narrows a permission listing. Nil fields match everything.
type PermissionFilter struct {
	DatasetID  *uuid.UUID
	OperatorID *uuid.UUID
}
