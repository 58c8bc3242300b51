package service

import (
	"context"

	"bookreview-backend/internal/domains/book/model"
)

// ServiceInterface is the business logic contract for books.
type ServiceInterface interface {
	// CreateBook validates the payload, formats the ISBN and inserts the
	// book. The referenced author must exist.
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)

	// GetBook returns the detail representation with the embedded author,
	// all reviews and rating aggregates. Served from cache when possible.
	GetBook(ctx context.Context, id int64) (*model.BookDetailResponse, error)

	// ListBooks returns one page of books with aggregates plus the total
	// count.
	ListBooks(ctx context.Context, limit, offset int) ([]*model.BookWithStats, int, error)

	// UpdateBook applies a partial update. A nested author payload edits
	// the book's current author and is saved before the book itself.
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.BookDetailResponse, error)

	// DeleteBook removes the book and its reviews.
	DeleteBook(ctx context.Context, id int64) error
}
