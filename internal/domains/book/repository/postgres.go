package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookreview-backend/internal/domains/book/model"
	"bookreview-backend/internal/shared"
)

const uniqueViolation = "23505"

type postgresBookRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookRepository(pool *pgxpool.Pool) BookRepository {
	return &postgresBookRepository{pool: pool}
}

func (r *postgresBookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (author_id, title, description, published, image, isbn)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		book.AuthorID,
		book.Title,
		book.Description,
		shared.TimePtr(book.Published),
		book.Image,
		book.ISBN,
	).Scan(&book.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrISBNTaken
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
		SELECT id, author_id, title, description, published, image, isbn
		FROM books
		WHERE id = $1
	`

	book, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

func (r *postgresBookRepository) GetWithStats(ctx context.Context, id int64) (*model.BookWithStats, error) {
	query := `
		SELECT b.id, b.author_id, b.title, b.description, b.published, b.image, b.isbn,
		       a.name || ' ' || a.last_name,
		       COALESCE(AVG(r.rating), 0), COUNT(r.id)
		FROM books b
		JOIN authors a ON a.id = b.author_id
		LEFT JOIN reviews r ON r.book_id = b.id
		WHERE b.id = $1
		GROUP BY b.id, a.name, a.last_name
	`

	book, err := scanBookWithStats(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

func (r *postgresBookRepository) ListWithStats(ctx context.Context, limit, offset int) ([]*model.BookWithStats, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := `
		SELECT b.id, b.author_id, b.title, b.description, b.published, b.image, b.isbn,
		       a.name || ' ' || a.last_name,
		       COALESCE(AVG(r.rating), 0), COUNT(r.id)
		FROM books b
		JOIN authors a ON a.id = b.author_id
		LEFT JOIN reviews r ON r.book_id = b.id
		GROUP BY b.id, a.name, a.last_name
		ORDER BY b.id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]*model.BookWithStats, 0, limit)
	for rows.Next() {
		book, err := scanBookWithStats(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}

	return books, total, rows.Err()
}

func (r *postgresBookRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
		UPDATE books
		SET author_id = $2, title = $3, description = $4, published = $5, image = $6, isbn = $7
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		book.ID,
		book.AuthorID,
		book.Title,
		book.Description,
		shared.TimePtr(book.Published),
		book.Image,
		book.ISBN,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrISBNTaken
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresBookRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func scanBook(row pgx.Row) (*model.Book, error) {
	book := &model.Book{}
	var published *time.Time

	err := row.Scan(
		&book.ID,
		&book.AuthorID,
		&book.Title,
		&book.Description,
		&published,
		&book.Image,
		&book.ISBN,
	)
	if err != nil {
		return nil, err
	}

	book.Published = shared.DatePtr(published)
	return book, nil
}

func scanBookWithStats(row pgx.Row) (*model.BookWithStats, error) {
	book := &model.BookWithStats{}
	var published *time.Time

	err := row.Scan(
		&book.ID,
		&book.AuthorID,
		&book.Title,
		&book.Description,
		&published,
		&book.Image,
		&book.ISBN,
		&book.BookAuthor,
		&book.AverageRating,
		&book.ReviewQuantity,
	)
	if err != nil {
		return nil, err
	}

	book.Published = shared.DatePtr(published)
	return book, nil
}
