package service

import (
	"context"

	"github.com/google/uuid"

	bookModel "bookreview-backend/internal/domains/book/model"
	bookRepository "bookreview-backend/internal/domains/book/repository"
	"bookreview-backend/internal/domains/review/model"
	"bookreview-backend/internal/domains/review/repository"
	"bookreview-backend/pkg/cache"
	"bookreview-backend/pkg/logger"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   bookRepository.BookRepository
	cache      cache.Cache
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	bookRepo bookRepository.BookRepository,
	cache cache.Cache,
) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		cache:      cache,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, ownerID uuid.UUID, owner string, bookID int64, req model.CreateReviewRequest) (*model.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}

	// Check-then-insert races with a concurrent request by the same user;
	// the schema carries no unique (user_id, book_id) constraint.
	exists, err := s.reviewRepo.ExistsByUserAndBook(ctx, ownerID, bookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrAlreadyReviewed
	}

	review := &model.ReviewWithOwner{
		Review: model.Review{
			UserID: ownerID,
			BookID: bookID,
			Body:   req.Body,
			Rating: req.Rating,
		},
		Owner: owner,
	}

	if err := s.reviewRepo.Create(ctx, &review.Review); err != nil {
		return nil, err
	}

	s.invalidateBook(ctx, bookID)

	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewService) GetBookReviews(ctx context.Context, bookID int64, limit, offset int) (string, []model.ReviewResponse, int, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return "", nil, 0, err
	}

	reviews, total, err := s.reviewRepo.ListByBook(ctx, bookID, limit, offset)
	if err != nil {
		return "", nil, 0, err
	}

	results := make([]model.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, review.ToResponse())
	}

	return book.Title, results, total, nil
}

func (s *reviewService) GetReview(ctx context.Context, id int64) (*model.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, callerID uuid.UUID, id int64, req model.UpdateReviewRequest) (*model.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.UserID != callerID {
		return nil, model.ErrNotOwner
	}

	req.Apply(&review.Review)

	if err := s.reviewRepo.Update(ctx, &review.Review); err != nil {
		return nil, err
	}

	s.invalidateBook(ctx, review.BookID)

	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, callerID uuid.UUID, id int64) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if review.UserID != callerID {
		return model.ErrNotOwner
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateBook(ctx, review.BookID)
	return nil
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.ReviewWithBook, int, error) {
	return s.reviewRepo.ListByUser(ctx, userID, limit, offset)
}

// invalidateBook drops the book's cached detail so its rating aggregates and
// review list get recomputed.
func (s *reviewService) invalidateBook(ctx context.Context, bookID int64) {
	if err := s.cache.Delete(ctx, bookModel.DetailCacheKey(bookID)); err != nil {
		logger.Warn("failed to invalidate book detail", map[string]interface{}{"book_id": bookID, "error": err.Error()})
	}
}
