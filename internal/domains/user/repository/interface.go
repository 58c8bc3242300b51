package repository

import (
	"context"

	"github.com/google/uuid"

	"bookreview-backend/internal/domains/user/model"
)

// UserRepository is the data access contract for account records.
type UserRepository interface {
	// Create inserts a new user. Returns model.ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, user *model.User) error

	// GetByID gets user by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail gets user by login email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByUsername gets user by username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// UpdateProfile updates username/email of a user.
	UpdateProfile(ctx context.Context, user *model.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
