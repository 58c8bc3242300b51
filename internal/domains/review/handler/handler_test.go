package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookModel "bookreview-backend/internal/domains/book/model"
	"bookreview-backend/internal/domains/review/model"
	"bookreview-backend/internal/shared/middleware"
)

// fakeReviewService returns canned values so the handler's status codes and
// envelopes can be asserted in isolation.
type fakeReviewService struct {
	createErr error
	created   *model.ReviewResponse

	bookTitle string
	reviews   []model.ReviewResponse
	total     int
	listErr   error

	review    *model.ReviewResponse
	reviewErr error

	myReviews []*model.ReviewWithBook
	myTotal   int
}

func (f *fakeReviewService) CreateReview(_ context.Context, _ uuid.UUID, _ string, _ int64, _ model.CreateReviewRequest) (*model.ReviewResponse, error) {
	return f.created, f.createErr
}

func (f *fakeReviewService) GetBookReviews(_ context.Context, _ int64, _, _ int) (string, []model.ReviewResponse, int, error) {
	return f.bookTitle, f.reviews, f.total, f.listErr
}

func (f *fakeReviewService) GetReview(_ context.Context, _ int64) (*model.ReviewResponse, error) {
	return f.review, f.reviewErr
}

func (f *fakeReviewService) UpdateReview(_ context.Context, _ uuid.UUID, _ int64, _ model.UpdateReviewRequest) (*model.ReviewResponse, error) {
	return f.review, f.reviewErr
}

func (f *fakeReviewService) DeleteReview(_ context.Context, _ uuid.UUID, _ int64) error {
	return f.reviewErr
}

func (f *fakeReviewService) ListUserReviews(_ context.Context, _ uuid.UUID, _, _ int) ([]*model.ReviewWithBook, int, error) {
	return f.myReviews, f.myTotal, nil
}

func setupRouter(svc *fakeReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(svc)

	router := gin.New()
	// Stand-in for the auth middleware.
	router.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, uuid.New())
		c.Set(middleware.CtxUsername, "alice")
	})

	router.POST("/api/v1/book/:id/review", h.Create)
	router.GET("/api/v1/book/:id/all-reviews", h.ListByBook)
	router.GET("/api/v1/review/:id", h.Get)
	router.PUT("/api/v1/review/:id", h.Update)
	router.DELETE("/api/v1/review/:id", h.Delete)
	router.GET("/api/v1/user/reviews", h.ListMine)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReviewEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeReviewService{created: &model.ReviewResponse{ID: 7, Owner: "alice", Body: "great", Rating: 5}}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodPost, "/api/v1/book/1/review", `{"body":"great","rating":5}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var got model.ReviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, "alice", got.Owner)
	})

	t.Run("duplicate review", func(t *testing.T) {
		svc := &fakeReviewService{createErr: model.ErrAlreadyReviewed}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodPost, "/api/v1/book/1/review", `{"body":"again","rating":3}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"You have already review this book"}`, w.Body.String())
	})

	t.Run("unknown book", func(t *testing.T) {
		svc := &fakeReviewService{createErr: bookModel.ErrBookNotFound}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodPost, "/api/v1/book/99/review", `{"body":"x","rating":3}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Book not found!"}`, w.Body.String())
	})

	t.Run("bad book id", func(t *testing.T) {
		router := setupRouter(&fakeReviewService{})

		w := doJSON(t, router, http.MethodPost, "/api/v1/book/abc/review", `{"body":"x","rating":3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListBookReviewsEndpoint(t *testing.T) {
	t.Run("unknown book", func(t *testing.T) {
		svc := &fakeReviewService{listErr: bookModel.ErrBookNotFound}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodGet, "/api/v1/book/99/all-reviews", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Book not found!"}`, w.Body.String())
	})

	t.Run("no reviews yet", func(t *testing.T) {
		svc := &fakeReviewService{bookTitle: "Dune", total: 0}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodGet, "/api/v1/book/1/all-reviews", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"There are no reviews for 'Dune' yet."}`, w.Body.String())
	})

	t.Run("single page omits pagination fields", func(t *testing.T) {
		svc := &fakeReviewService{
			bookTitle: "Dune",
			reviews:   []model.ReviewResponse{{ID: 1, Owner: "alice", Body: "great", Rating: 5}},
			total:     1,
		}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodGet, "/api/v1/book/1/all-reviews", "")

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Reviews for 'Dune'. ", body["message"])
		assert.NotContains(t, body, "count")
		assert.NotContains(t, body, "next")
		assert.Len(t, body["data"], 1)
	})

	t.Run("second page exists", func(t *testing.T) {
		reviews := make([]model.ReviewResponse, model.BookPageSize)
		for i := range reviews {
			reviews[i] = model.ReviewResponse{ID: int64(i + 1), Owner: "alice", Body: "x", Rating: 4}
		}
		svc := &fakeReviewService{bookTitle: "Dune", reviews: reviews, total: 7}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodGet, "/api/v1/book/1/all-reviews", "")

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(7), body["count"])
		require.Contains(t, body, "next")
		assert.Contains(t, body["next"], "page=2")
		assert.Len(t, body["data"], model.BookPageSize)
	})
}

func TestReviewDetailEndpoints(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		svc := &fakeReviewService{review: &model.ReviewResponse{ID: 3, Owner: "alice", Body: "fine", Rating: 3}}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodGet, "/api/v1/review/3", "")

		require.Equal(t, http.StatusOK, w.Code)
		var got model.ReviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("update by non-owner", func(t *testing.T) {
		svc := &fakeReviewService{reviewErr: model.ErrNotOwner}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodPut, "/api/v1/review/3", `{"body":"hijack"}`)

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"detail":"You do not have permission to perform this action."}`, w.Body.String())
	})

	t.Run("missing review", func(t *testing.T) {
		svc := &fakeReviewService{reviewErr: model.ErrReviewNotFound}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodGet, "/api/v1/review/404", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		svc := &fakeReviewService{}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodDelete, "/api/v1/review/3", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestListMyReviewsEndpoint(t *testing.T) {
	t.Run("nothing reviewed", func(t *testing.T) {
		router := setupRouter(&fakeReviewService{})

		w := doJSON(t, router, http.MethodGet, "/api/v1/user/reviews", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"You have not reviewed any books yet."}`, w.Body.String())
	})

	t.Run("reviews carry edit links", func(t *testing.T) {
		svc := &fakeReviewService{
			myReviews: []*model.ReviewWithBook{
				{Review: model.Review{ID: 12, Body: "great", Rating: 5}, BookTitle: "Dune"},
			},
			myTotal: 1,
		}
		router := setupRouter(svc)

		w := doJSON(t, router, http.MethodGet, "/api/v1/user/reviews", "")

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Reviews by 'alice'. ", body["message"])

		data, ok := body["data"].([]interface{})
		require.True(t, ok)
		require.Len(t, data, 1)

		item := data[0].(map[string]interface{})
		assert.Equal(t, "Dune", item["book_title"])
		assert.Contains(t, item["update_url"], "/api/v1/review/12")
	})
}
