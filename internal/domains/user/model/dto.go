package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest creates an account. Password2 must repeat Password.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

func (r RegisterRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 120),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Password2,
			validation.Required.Error("password confirmation is required"),
		),
	); err != nil {
		return err
	}

	if r.Password != r.Password2 {
		return validation.Errors{"password": errors.New("Password fields didn't match!")}
	}

	return nil
}

// LoginRequest exchanges credentials for a token pair.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenPairResponse carries a signed access/refresh pair.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// ChangePasswordRequest rotates the caller's own password. The current
// password must verify before the new one is applied.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Password2   string `json:"password2" binding:"required"`
}

func (r ChangePasswordRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required.Error("old password is required")),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Password2,
			validation.Required.Error("password confirmation is required"),
		),
	); err != nil {
		return err
	}

	if r.Password != r.Password2 {
		return validation.Errors{"password": errors.New("Password fields didn't match!")}
	}

	return nil
}

// UpdateProfileRequest updates the caller's own username/email.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(r.Username != "", validation.Length(1, 120)),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid email format")),
		),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// UserResponse is the public account representation.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
