package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Email is the login identity; username is the
// display name shown as a review owner. Accounts are never hard-deleted.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never exposed
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role maps the admin flag to the role claim carried in tokens.
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}
