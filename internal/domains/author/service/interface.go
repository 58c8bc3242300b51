package service

import (
	"context"

	"bookreview-backend/internal/domains/author/model"
)

// ServiceInterface is the author business logic contract.
type ServiceInterface interface {
	// CreateAuthor creates an author from a validated payload.
	CreateAuthor(ctx context.Context, req model.AuthorPayload) (*model.Author, error)

	// GetAuthor returns the author detail, including written book titles.
	GetAuthor(ctx context.Context, id int64) (*model.AuthorDetailResponse, error)

	// ListAuthors returns one page of authors plus the total count.
	ListAuthors(ctx context.Context, limit, offset int) ([]*model.Author, int, error)

	// UpdateAuthor replaces the author's fields and returns the new detail.
	UpdateAuthor(ctx context.Context, id int64, req model.AuthorPayload) (*model.AuthorDetailResponse, error)

	// DeleteAuthor removes an author and, by cascade, its books and reviews.
	DeleteAuthor(ctx context.Context, id int64) error
}
