package service

import (
	"context"

	"github.com/google/uuid"

	"bookreview-backend/internal/domains/user/model"
)

// ServiceInterface is the account business logic contract.
type ServiceInterface interface {
	// Register creates a user with a securely hashed password.
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error)

	// Login maps (email, password) to a signed access/refresh token pair.
	Login(ctx context.Context, req model.LoginRequest) (*model.TokenPairResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (*model.AccessTokenResponse, error)

	// Verify checks a token signature and expiry.
	Verify(token string) error

	// ChangePassword rotates the password of the account identified by
	// username. The caller must be that account's owner and must prove
	// knowledge of the current password.
	ChangePassword(ctx context.Context, callerID uuid.UUID, username string, req model.ChangePasswordRequest) error

	// UpdateProfile updates username/email of the caller's own account.
	UpdateProfile(ctx context.Context, callerID uuid.UUID, username string, req model.UpdateProfileRequest) (*model.UserResponse, error)
}
