package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookreview-backend/internal/domains/author/model"
	"bookreview-backend/internal/shared"
)

type postgresAuthorRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAuthorRepository(pool *pgxpool.Pool) AuthorRepository {
	return &postgresAuthorRepository{pool: pool}
}

func (r *postgresAuthorRepository) Create(ctx context.Context, author *model.Author) error {
	query := `
		INSERT INTO authors (name, last_name, bio, image, birth_date, death_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		author.Name,
		author.LastName,
		author.Bio,
		author.Image,
		shared.TimePtr(author.BirthDate),
		shared.TimePtr(author.DeathDate),
	).Scan(&author.ID)

	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *postgresAuthorRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
		SELECT id, name, last_name, bio, image, birth_date, death_date
		FROM authors
		WHERE id = $1
	`

	author, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return author, nil
}

func (r *postgresAuthorRepository) List(ctx context.Context, limit, offset int) ([]*model.Author, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	query := `
		SELECT id, name, last_name, bio, image, birth_date, death_date
		FROM authors
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]*model.Author, 0, limit)
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, author)
	}

	return authors, total, rows.Err()
}

func (r *postgresAuthorRepository) Update(ctx context.Context, author *model.Author) error {
	query := `
		UPDATE authors
		SET name = $2, last_name = $3, bio = $4, image = $5, birth_date = $6, death_date = $7
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		author.ID,
		author.Name,
		author.LastName,
		author.Bio,
		author.Image,
		shared.TimePtr(author.BirthDate),
		shared.TimePtr(author.DeathDate),
	)

	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresAuthorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresAuthorRepository) BookTitles(ctx context.Context, authorID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT title FROM books WHERE author_id = $1 ORDER BY id`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list book titles: %w", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan book title: %w", err)
		}
		titles = append(titles, title)
	}

	return titles, rows.Err()
}

func (r *postgresAuthorRepository) BookIDs(ctx context.Context, authorID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM books WHERE author_id = $1 ORDER BY id`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list book ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan book id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	author := &model.Author{}
	var birth, death *time.Time

	err := row.Scan(
		&author.ID,
		&author.Name,
		&author.LastName,
		&author.Bio,
		&author.Image,
		&birth,
		&death,
	)
	if err != nil {
		return nil, err
	}

	author.BirthDate = shared.DatePtr(birth)
	author.DeathDate = shared.DatePtr(death)
	return author, nil
}
