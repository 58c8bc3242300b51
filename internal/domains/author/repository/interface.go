package repository

import (
	"context"

	"bookreview-backend/internal/domains/author/model"
)

// AuthorRepository is the data access contract for authors.
type AuthorRepository interface {
	// Create inserts a new author and fills in its assigned id.
	Create(ctx context.Context, author *model.Author) error

	// GetByID gets author by id.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// List returns one page of authors plus the total count.
	List(ctx context.Context, limit, offset int) ([]*model.Author, int, error)

	// Update saves all scalar fields of an author.
	Update(ctx context.Context, author *model.Author) error

	// Delete removes an author; books and their reviews cascade.
	Delete(ctx context.Context, id int64) error

	// BookTitles lists the titles of the author's books.
	BookTitles(ctx context.Context, authorID int64) ([]string, error)

	// BookIDs lists the ids of the author's books, for cache invalidation
	// when the author record changes.
	BookIDs(ctx context.Context, authorID int64) ([]int64, error)
}
