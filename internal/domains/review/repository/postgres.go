package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookreview-backend/internal/domains/review/model"
)

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (user_id, book_id, body, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		review.UserID,
		review.BookID,
		review.Body,
		review.Rating,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, id int64) (*model.ReviewWithOwner, error) {
	query := `
		SELECT r.id, r.user_id, r.book_id, r.body, r.rating, r.created_at, r.updated_at, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`

	review, err := scanReviewWithOwner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) ExistsByUserAndBook(ctx context.Context, userID uuid.UUID, bookID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND book_id = $2)`

	if err := r.pool.QueryRow(ctx, query, userID, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}

	return exists, nil
}

func (r *postgresReviewRepository) ListByBook(ctx context.Context, bookID int64, limit, offset int) ([]*model.ReviewWithOwner, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE book_id = $1`, bookID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := `
		SELECT r.id, r.user_id, r.book_id, r.body, r.rating, r.created_at, r.updated_at, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, bookID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews, err := collectReviewsWithOwner(rows, limit)
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *postgresReviewRepository) ListAllByBook(ctx context.Context, bookID int64) ([]*model.ReviewWithOwner, error) {
	query := `
		SELECT r.id, r.user_id, r.book_id, r.body, r.rating, r.created_at, r.updated_at, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	return collectReviewsWithOwner(rows, 0)
}

func (r *postgresReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.ReviewWithBook, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := `
		SELECT r.id, r.user_id, r.book_id, r.body, r.rating, r.created_at, r.updated_at, b.title
		FROM reviews r
		JOIN books b ON b.id = r.book_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*model.ReviewWithBook, 0, limit)
	for rows.Next() {
		review := &model.ReviewWithBook{}
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.BookID,
			&review.Body,
			&review.Rating,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.BookTitle,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, total, rows.Err()
}

func (r *postgresReviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE reviews
		SET body = $2, rating = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, review.ID, review.Body, review.Rating).Scan(&review.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrReviewNotFound
		}
		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func scanReviewWithOwner(row pgx.Row) (*model.ReviewWithOwner, error) {
	review := &model.ReviewWithOwner{}
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.BookID,
		&review.Body,
		&review.Rating,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.Owner,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func collectReviewsWithOwner(rows pgx.Rows, capacity int) ([]*model.ReviewWithOwner, error) {
	reviews := make([]*model.ReviewWithOwner, 0, capacity)
	for rows.Next() {
		review, err := scanReviewWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
