package repository

import (
	"context"

	"github.com/google/uuid"

	"bookreview-backend/internal/domains/review/model"
)

// ReviewRepository is the data access contract for reviews. Reads join the
// owner's username or the book's title where the representation needs them.
type ReviewRepository interface {
	// Create inserts a new review and fills in its assigned id and
	// timestamps.
	Create(ctx context.Context, review *model.Review) error

	// GetByID gets a review with its owner's username.
	GetByID(ctx context.Context, id int64) (*model.ReviewWithOwner, error)

	// ExistsByUserAndBook reports whether the user already reviewed the
	// book.
	ExistsByUserAndBook(ctx context.Context, userID uuid.UUID, bookID int64) (bool, error)

	// ListByBook returns one page of a book's reviews plus the total
	// count.
	ListByBook(ctx context.Context, bookID int64, limit, offset int) ([]*model.ReviewWithOwner, int, error)

	// ListAllByBook returns every review of a book, newest first.
	ListAllByBook(ctx context.Context, bookID int64) ([]*model.ReviewWithOwner, error)

	// ListByUser returns one page of a user's reviews plus the total
	// count.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.ReviewWithBook, int, error)

	// Update saves the body and rating of a review.
	Update(ctx context.Context, review *model.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id int64) error
}
