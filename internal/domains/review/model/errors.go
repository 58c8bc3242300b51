package model

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotOwner       = errors.New("review belongs to another user")

	// ErrAlreadyReviewed carries the exact wire message clients depend on.
	ErrAlreadyReviewed = errors.New("You have already review this book")
)
