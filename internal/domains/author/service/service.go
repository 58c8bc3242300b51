package service

import (
	"context"
	"fmt"

	"bookreview-backend/internal/domains/author/model"
	"bookreview-backend/internal/domains/author/repository"
	bookModel "bookreview-backend/internal/domains/book/model"
	"bookreview-backend/pkg/cache"
	"bookreview-backend/pkg/logger"
)

type authorService struct {
	authorRepo repository.AuthorRepository
	cache      cache.Cache
}

func NewAuthorService(authorRepo repository.AuthorRepository, cache cache.Cache) ServiceInterface {
	return &authorService{authorRepo: authorRepo, cache: cache}
}

func (s *authorService) CreateAuthor(ctx context.Context, req model.AuthorPayload) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author := &model.Author{}
	req.Apply(author)

	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, err
	}

	return author, nil
}

func (s *authorService) GetAuthor(ctx context.Context, id int64) (*model.AuthorDetailResponse, error) {
	author, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	titles, err := s.authorRepo.BookTitles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load written books: %w", err)
	}

	resp := author.ToDetailResponse(titles)
	return &resp, nil
}

func (s *authorService) ListAuthors(ctx context.Context, limit, offset int) ([]*model.Author, int, error) {
	return s.authorRepo.List(ctx, limit, offset)
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, req model.AuthorPayload) (*model.AuthorDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(author)

	if err := s.authorRepo.Update(ctx, author); err != nil {
		return nil, err
	}

	// Cached book details embed the author, so they are stale now.
	s.invalidateBooks(ctx, id)

	titles, err := s.authorRepo.BookTitles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load written books: %w", err)
	}

	resp := author.ToDetailResponse(titles)
	return &resp, nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	// Collect the book ids first; the delete cascades over the books.
	bookIDs, err := s.authorRepo.BookIDs(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load book ids: %w", err)
	}

	if err := s.authorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateBookIDs(ctx, id, bookIDs)
	return nil
}

func (s *authorService) invalidateBooks(ctx context.Context, authorID int64) {
	bookIDs, err := s.authorRepo.BookIDs(ctx, authorID)
	if err != nil {
		logger.Warn("failed to load book ids for invalidation", map[string]interface{}{"author_id": authorID, "error": err.Error()})
		return
	}

	s.invalidateBookIDs(ctx, authorID, bookIDs)
}

func (s *authorService) invalidateBookIDs(ctx context.Context, authorID int64, bookIDs []int64) {
	if len(bookIDs) == 0 {
		return
	}

	keys := make([]string, 0, len(bookIDs))
	for _, bookID := range bookIDs {
		keys = append(keys, bookModel.DetailCacheKey(bookID))
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("failed to invalidate book details", map[string]interface{}{"author_id": authorID, "error": err.Error()})
	}
}
