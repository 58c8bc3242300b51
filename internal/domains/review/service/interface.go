package service

import (
	"context"

	"github.com/google/uuid"

	"bookreview-backend/internal/domains/review/model"
)

// ServiceInterface is the business logic contract for reviews.
type ServiceInterface interface {
	// CreateReview adds the caller's review of a book. Fails when the book
	// does not exist or the caller already reviewed it.
	CreateReview(ctx context.Context, ownerID uuid.UUID, owner string, bookID int64, req model.CreateReviewRequest) (*model.ReviewResponse, error)

	// GetBookReviews returns the book's title plus one page of its
	// reviews and the total count.
	GetBookReviews(ctx context.Context, bookID int64, limit, offset int) (string, []model.ReviewResponse, int, error)

	// GetReview gets a single review by id.
	GetReview(ctx context.Context, id int64) (*model.ReviewResponse, error)

	// UpdateReview edits a review. Only its owner may do so.
	UpdateReview(ctx context.Context, callerID uuid.UUID, id int64, req model.UpdateReviewRequest) (*model.ReviewResponse, error)

	// DeleteReview removes a review. Only its owner may do so.
	DeleteReview(ctx context.Context, callerID uuid.UUID, id int64) error

	// ListUserReviews returns one page of the caller's reviews plus the
	// total count.
	ListUserReviews(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.ReviewWithBook, int, error)
}
