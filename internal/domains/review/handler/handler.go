package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	bookModel "bookreview-backend/internal/domains/book/model"
	"bookreview-backend/internal/domains/review/model"
	"bookreview-backend/internal/domains/review/service"
	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/internal/shared/pagination"
	"bookreview-backend/internal/shared/response"
)

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create adds the caller's review of a book
// POST /api/v1/book/:id/review
func (h *ReviewHandler) Create(c *gin.Context) {
	bookID, ok := parseID(c, "Invalid book ID")
	if !ok {
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	username := c.GetString(middleware.CtxUsername)

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID, username, bookID, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListByBook returns a book's reviews in fixed-size pages of five
// GET /api/v1/book/:id/all-reviews
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, ok := parseID(c, "Invalid book ID")
	if !ok {
		return
	}

	params := pagination.Parse(c.Request, model.BookPageSize)

	title, reviews, total, err := h.reviewService.GetBookReviews(c.Request.Context(), bookID, params.PageSize, params.Offset())
	if err != nil {
		h.mapError(c, err)
		return
	}

	if total == 0 {
		response.Message(c, http.StatusOK, fmt.Sprintf("There are no reviews for '%s' yet.", title))
		return
	}

	envelope := response.Envelope{
		Message: fmt.Sprintf("Reviews for '%s'. ", title),
		Data:    reviews,
	}

	// Pagination fields only appear once a second page exists.
	if params.TotalPages(total) > 1 {
		envelope.Count = &total
		envelope.Next, envelope.Previous = params.Links(c.Request, total)
	}

	c.JSON(http.StatusOK, envelope)
}

// Get returns a single review
// GET /api/v1/review/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid review ID")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Update edits the caller's own review
// PUT /api/v1/review/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid review ID")
	if !ok {
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), userID, id, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Delete removes the caller's own review
// DELETE /api/v1/review/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid review ID")
	if !ok {
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), userID, id); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMine returns the caller's reviews with edit hyperlinks
// GET /api/v1/user/reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}
	username := c.GetString(middleware.CtxUsername)

	params := pagination.Parse(c.Request, pagination.DefaultPageSize)

	reviews, total, err := h.reviewService.ListUserReviews(c.Request.Context(), userID, params.PageSize, params.Offset())
	if err != nil {
		h.mapError(c, err)
		return
	}

	if total == 0 {
		response.Message(c, http.StatusOK, "You have not reviewed any books yet.")
		return
	}

	results := make([]model.MyReviewItem, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, model.MyReviewItem{
			BookTitle: review.BookTitle,
			Body:      review.Body,
			Rating:    review.Rating,
			UpdateURL: pagination.AbsoluteURL(c.Request, fmt.Sprintf("/api/v1/review/%d", review.ID)),
		})
	}

	envelope := response.Envelope{
		Message: fmt.Sprintf("Reviews by '%s'. ", username),
		Data:    results,
	}

	if params.TotalPages(total) > 1 {
		envelope.Count = &total
		envelope.Next, envelope.Previous = params.Links(c.Request, total)
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *ReviewHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAlreadyReviewed):
		response.Message(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotOwner):
		response.Forbidden(c)
	case errors.Is(err, model.ErrReviewNotFound):
		response.NotFound(c)
	case errors.Is(err, bookModel.ErrBookNotFound):
		response.Message(c, http.StatusNotFound, "Book not found!")
	default:
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.ServerError(c, err)
	}
}

func parseID(c *gin.Context, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, msg)
		return 0, false
	}
	return id, true
}
