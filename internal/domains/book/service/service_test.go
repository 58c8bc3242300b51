package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "bookreview-backend/internal/domains/author/model"
	"bookreview-backend/internal/domains/book/model"
	reviewModel "bookreview-backend/internal/domains/review/model"
)

// fakeBookRepo is an in-memory BookRepository with stats derived from the
// attached review repo.
type fakeBookRepo struct {
	books   map[int64]*model.Book
	reviews *fakeReviewRepo
	nextID  int64
}

func (f *fakeBookRepo) Create(_ context.Context, book *model.Book) error {
	for _, existing := range f.books {
		if existing.ISBN == book.ISBN {
			return model.ErrISBNTaken
		}
	}
	book.ID = f.nextID
	f.nextID++
	f.books[book.ID] = book
	return nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id int64) (*model.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	copied := *book
	return &copied, nil
}

func (f *fakeBookRepo) GetWithStats(ctx context.Context, id int64) (*model.BookWithStats, error) {
	book, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := &model.BookWithStats{Book: *book, BookAuthor: "Frank Herbert"}
	reviews, _ := f.reviews.ListAllByBook(ctx, id)
	for _, review := range reviews {
		stats.AverageRating += float64(review.Rating)
	}
	if len(reviews) > 0 {
		stats.AverageRating /= float64(len(reviews))
	}
	stats.ReviewQuantity = len(reviews)
	return stats, nil
}

func (f *fakeBookRepo) ListWithStats(ctx context.Context, limit, offset int) ([]*model.BookWithStats, int, error) {
	var result []*model.BookWithStats
	for id := int64(1); id < f.nextID; id++ {
		if _, ok := f.books[id]; !ok {
			continue
		}
		stats, err := f.GetWithStats(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, stats)
	}
	total := len(result)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return result[offset:end], total, nil
}

func (f *fakeBookRepo) Update(_ context.Context, book *model.Book) error {
	if _, ok := f.books[book.ID]; !ok {
		return model.ErrBookNotFound
	}
	copied := *book
	f.books[book.ID] = &copied
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

type fakeAuthorRepo struct {
	authors map[int64]*authorModel.Author
}

func (f *fakeAuthorRepo) Create(_ context.Context, author *authorModel.Author) error {
	author.ID = int64(len(f.authors) + 1)
	f.authors[author.ID] = author
	return nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id int64) (*authorModel.Author, error) {
	author, ok := f.authors[id]
	if !ok {
		return nil, authorModel.ErrAuthorNotFound
	}
	copied := *author
	return &copied, nil
}

func (f *fakeAuthorRepo) List(_ context.Context, _, _ int) ([]*authorModel.Author, int, error) {
	return nil, 0, nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, author *authorModel.Author) error {
	if _, ok := f.authors[author.ID]; !ok {
		return authorModel.ErrAuthorNotFound
	}
	copied := *author
	f.authors[author.ID] = &copied
	return nil
}

func (f *fakeAuthorRepo) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeAuthorRepo) BookTitles(_ context.Context, _ int64) ([]string, error) {
	return nil, nil
}

func (f *fakeAuthorRepo) BookIDs(_ context.Context, _ int64) ([]int64, error) {
	return nil, nil
}

type fakeReviewRepo struct {
	byBook map[int64][]*reviewModel.ReviewWithOwner
}

func (f *fakeReviewRepo) Create(_ context.Context, _ *reviewModel.Review) error { return nil }

func (f *fakeReviewRepo) GetByID(_ context.Context, _ int64) (*reviewModel.ReviewWithOwner, error) {
	return nil, reviewModel.ErrReviewNotFound
}

func (f *fakeReviewRepo) ExistsByUserAndBook(_ context.Context, _ uuid.UUID, _ int64) (bool, error) {
	return false, nil
}

func (f *fakeReviewRepo) ListByBook(_ context.Context, bookID int64, _, _ int) ([]*reviewModel.ReviewWithOwner, int, error) {
	reviews := f.byBook[bookID]
	return reviews, len(reviews), nil
}

func (f *fakeReviewRepo) ListAllByBook(_ context.Context, bookID int64) ([]*reviewModel.ReviewWithOwner, error) {
	return f.byBook[bookID], nil
}

func (f *fakeReviewRepo) ListByUser(_ context.Context, _ uuid.UUID, _, _ int) ([]*reviewModel.ReviewWithBook, int, error) {
	return nil, 0, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, _ *reviewModel.Review) error { return nil }
func (f *fakeReviewRepo) Delete(_ context.Context, _ int64) error               { return nil }

// fakeCache is a real in-memory cache so hit and invalidation paths run.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func newTestService() (ServiceInterface, *fakeBookRepo, *fakeAuthorRepo, *fakeReviewRepo, *fakeCache) {
	reviewRepo := &fakeReviewRepo{byBook: map[int64][]*reviewModel.ReviewWithOwner{}}
	bookRepo := &fakeBookRepo{
		books: map[int64]*model.Book{
			1: {ID: 1, AuthorID: 1, Title: "Dune", ISBN: "123-45-678901-2-3"},
		},
		reviews: reviewRepo,
		nextID:  2,
	}
	authorRepo := &fakeAuthorRepo{authors: map[int64]*authorModel.Author{
		1: {ID: 1, Name: "Frank", LastName: "Herbert"},
	}}
	cache := newFakeCache()
	return NewBookService(bookRepo, authorRepo, reviewRepo, cache), bookRepo, authorRepo, reviewRepo, cache
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("formats the ISBN on insert", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		book, err := svc.CreateBook(ctx, model.CreateBookRequest{
			Title:  "Children of Dune",
			ISBN:   "9876543210987",
			Author: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, "987-65-432109-8-7", book.ISBN)
		assert.NotZero(t, book.ID)
	})

	t.Run("unknown author", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		_, err := svc.CreateBook(ctx, model.CreateBookRequest{
			Title:  "Orphan",
			ISBN:   "9876543210987",
			Author: 42,
		})
		assert.ErrorIs(t, err, authorModel.ErrAuthorNotFound)
	})

	t.Run("invalid ISBN length", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		_, err := svc.CreateBook(ctx, model.CreateBookRequest{
			Title:  "Bad ISBN",
			ISBN:   "12345",
			Author: 1,
		})
		assert.Error(t, err)
	})
}

func TestGetBook(t *testing.T) {
	ctx := context.Background()

	t.Run("empty review set yields zero aggregates", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		detail, err := svc.GetBook(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, "Dune", detail.Title)
		assert.Equal(t, "Frank", detail.Author.Name)
		assert.Zero(t, detail.AverageRating)
		assert.Zero(t, detail.ReviewQuantity)
		assert.Empty(t, detail.Reviews)
	})

	t.Run("aggregates are rounded", func(t *testing.T) {
		svc, _, _, reviewRepo, _ := newTestService()
		reviewRepo.byBook[1] = []*reviewModel.ReviewWithOwner{
			{Review: reviewModel.Review{ID: 1, BookID: 1, Rating: 5, Body: "a"}, Owner: "alice"},
			{Review: reviewModel.Review{ID: 2, BookID: 1, Rating: 4, Body: "b"}, Owner: "bob"},
			{Review: reviewModel.Review{ID: 3, BookID: 1, Rating: 4, Body: "c"}, Owner: "carol"},
		}

		detail, err := svc.GetBook(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 4.33, detail.AverageRating)
		assert.Equal(t, 3, detail.ReviewQuantity)
		require.Len(t, detail.Reviews, 3)
		assert.Equal(t, "alice", detail.Reviews[0].Owner)
	})

	t.Run("second read hits the cache", func(t *testing.T) {
		svc, bookRepo, _, _, cache := newTestService()

		_, err := svc.GetBook(ctx, 1)
		require.NoError(t, err)
		assert.Contains(t, cache.entries, "book:detail:1")

		// A stale cache entry is served until invalidation.
		bookRepo.books[1].Title = "Dune Messiah"
		detail, err := svc.GetBook(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Dune", detail.Title)
	})

	t.Run("missing book", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		_, err := svc.GetBook(ctx, 99)
		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("nested author payload edits the current author", func(t *testing.T) {
		svc, _, authorRepo, _, _ := newTestService()

		detail, err := svc.UpdateBook(ctx, 1, model.UpdateBookRequest{
			Author: &authorModel.AuthorPayload{Name: "Franklin", LastName: "Herbert"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Franklin", detail.Author.Name)
		assert.Equal(t, "Franklin", authorRepo.authors[1].Name)
		// The book itself keeps its fields.
		assert.Equal(t, "Dune", detail.Title)
	})

	t.Run("scalar update reformats the ISBN and invalidates the cache", func(t *testing.T) {
		svc, _, _, _, cache := newTestService()

		_, err := svc.GetBook(ctx, 1)
		require.NoError(t, err)

		title := "Dune Messiah"
		isbn := "1112223334445"
		detail, err := svc.UpdateBook(ctx, 1, model.UpdateBookRequest{Title: &title, ISBN: &isbn})
		require.NoError(t, err)

		assert.Equal(t, "Dune Messiah", detail.Title)
		assert.Equal(t, "111-22-233344-4-5", detail.ISBN)

		cachedRaw, ok := cache.entries["book:detail:1"]
		require.True(t, ok)
		var cached model.BookDetailResponse
		require.NoError(t, json.Unmarshal(cachedRaw, &cached))
		assert.Equal(t, "Dune Messiah", cached.Title)
	})

	t.Run("missing book", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()

		title := "x"
		_, err := svc.UpdateBook(ctx, 99, model.UpdateBookRequest{Title: &title})
		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	svc, bookRepo, _, _, cache := newTestService()

	_, err := svc.GetBook(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(ctx, 1))
	assert.Empty(t, bookRepo.books)
	assert.NotContains(t, cache.entries, "book:detail:1")

	assert.ErrorIs(t, svc.DeleteBook(ctx, 1), model.ErrBookNotFound)
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	svc, _, _, reviewRepo, _ := newTestService()
	reviewRepo.byBook[1] = []*reviewModel.ReviewWithOwner{
		{Review: reviewModel.Review{ID: 1, BookID: 1, Rating: 5}, Owner: "alice"},
		{Review: reviewModel.Review{ID: 2, BookID: 1, Rating: 4}, Owner: "bob"},
		{Review: reviewModel.Review{ID: 3, BookID: 1, Rating: 4}, Owner: "carol"},
	}

	books, total, err := svc.ListBooks(ctx, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, books, 1)
	assert.Equal(t, "Frank Herbert", books[0].BookAuthor)
	assert.Equal(t, 4.33, books[0].AverageRating)
	assert.Equal(t, 3, books[0].ReviewQuantity)
}
