package model

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user with this email already exists")

	// ErrInvalidCredentials keeps the exact wording clients already match on.
	ErrInvalidCredentials = errors.New("No active account found with the given credentials")

	ErrWrongOldPassword = errors.New("Old password is not correct")

	// ErrNotSelf is returned when a caller targets another user's account on
	// a self-service endpoint.
	ErrNotSelf = errors.New("cannot operate on another user's account")
)
