package service

import (
	"context"
	"fmt"
	"time"

	authorRepository "bookreview-backend/internal/domains/author/repository"
	"bookreview-backend/internal/domains/book/model"
	"bookreview-backend/internal/domains/book/repository"
	reviewModel "bookreview-backend/internal/domains/review/model"
	reviewRepository "bookreview-backend/internal/domains/review/repository"
	"bookreview-backend/pkg/cache"
	"bookreview-backend/pkg/logger"
)

const detailCacheTTL = 5 * time.Minute

type bookService struct {
	bookRepo   repository.BookRepository
	authorRepo authorRepository.AuthorRepository
	reviewRepo reviewRepository.ReviewRepository
	cache      cache.Cache
}

func NewBookService(
	bookRepo repository.BookRepository,
	authorRepo authorRepository.AuthorRepository,
	reviewRepo reviewRepository.ReviewRepository,
	cache cache.Cache,
) ServiceInterface {
	return &bookService{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
		reviewRepo: reviewRepo,
		cache:      cache,
	}
}

func (s *bookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	isbn, err := model.FormatISBN(req.ISBN)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorRepo.GetByID(ctx, req.Author); err != nil {
		return nil, err
	}

	book := &model.Book{
		AuthorID:    req.Author,
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
		Image:       req.Image,
		ISBN:        isbn,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

func (s *bookService) GetBook(ctx context.Context, id int64) (*model.BookDetailResponse, error) {
	key := model.DetailCacheKey(id)

	var cached model.BookDetailResponse
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	detail, err := s.buildDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, detail, detailCacheTTL); err != nil {
		logger.Warn("failed to cache book detail", map[string]interface{}{"book_id": id, "error": err.Error()})
	}

	return detail, nil
}

func (s *bookService) ListBooks(ctx context.Context, limit, offset int) ([]*model.BookWithStats, int, error) {
	books, total, err := s.bookRepo.ListWithStats(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	for _, book := range books {
		book.AverageRating = model.RoundRating(book.AverageRating)
	}

	return books, total, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.BookDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The nested payload edits the book's current author and is persisted
	// before the book's own fields.
	if req.Author != nil {
		if err := req.Author.Validate(); err != nil {
			return nil, err
		}

		author, err := s.authorRepo.GetByID(ctx, book.AuthorID)
		if err != nil {
			return nil, err
		}

		req.Author.Apply(author)
		if err := s.authorRepo.Update(ctx, author); err != nil {
			return nil, err
		}
	}

	req.Apply(book)
	if req.ISBN != nil {
		isbn, err := model.FormatISBN(*req.ISBN)
		if err != nil {
			return nil, err
		}
		book.ISBN = isbn
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, model.DetailCacheKey(id)); err != nil {
		logger.Warn("failed to invalidate book detail", map[string]interface{}{"book_id": id, "error": err.Error()})
	}

	return s.GetBook(ctx, id)
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, model.DetailCacheKey(id)); err != nil {
		logger.Warn("failed to invalidate book detail", map[string]interface{}{"book_id": id, "error": err.Error()})
	}

	return nil
}

func (s *bookService) buildDetail(ctx context.Context, id int64) (*model.BookDetailResponse, error) {
	book, err := s.bookRepo.GetWithStats(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.authorRepo.GetByID(ctx, book.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load book author: %w", err)
	}

	reviews, err := s.reviewRepo.ListAllByBook(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load book reviews: %w", err)
	}

	results := make([]reviewModel.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, review.ToResponse())
	}

	return &model.BookDetailResponse{
		ID:             book.ID,
		Title:          book.Title,
		Description:    book.Description,
		Published:      book.Published,
		Image:          book.Image,
		ISBN:           book.ISBN,
		Author:         *author,
		Reviews:        results,
		AverageRating:  model.RoundRating(book.AverageRating),
		ReviewQuantity: book.ReviewQuantity,
	}, nil
}
