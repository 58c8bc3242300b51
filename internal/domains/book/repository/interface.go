package repository

import (
	"context"

	"bookreview-backend/internal/domains/book/model"
)

// BookRepository is the data access contract for books. Rating aggregates are
// computed in SQL so listings stay a single query.
type BookRepository interface {
	// Create inserts a new book and fills in its assigned id.
	Create(ctx context.Context, book *model.Book) error

	// GetByID gets book by id.
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// GetWithStats gets a book together with its review aggregates.
	GetWithStats(ctx context.Context, id int64) (*model.BookWithStats, error)

	// ListWithStats returns one page of books with aggregates plus the
	// total count.
	ListWithStats(ctx context.Context, limit, offset int) ([]*model.BookWithStats, int, error)

	// Update saves all scalar fields of a book.
	Update(ctx context.Context, book *model.Book) error

	// Delete removes a book; its reviews cascade.
	Delete(ctx context.Context, id int64) error
}
