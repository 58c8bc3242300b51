package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	authorModel "bookreview-backend/internal/domains/author/model"
	"bookreview-backend/internal/domains/book/model"
	"bookreview-backend/internal/domains/book/service"
	"bookreview-backend/internal/shared/pagination"
	"bookreview-backend/internal/shared/response"
)

type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// List returns a paginated book collection with rating aggregates
// GET /api/v1/books
func (h *BookHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Request, pagination.DefaultPageSize)

	books, total, err := h.bookService.ListBooks(c.Request.Context(), params.PageSize, params.Offset())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	results := make([]model.BookListItem, 0, len(books))
	for _, book := range books {
		results = append(results, model.BookListItem{
			ID:             book.ID,
			Title:          book.Title,
			BookAuthor:     book.BookAuthor,
			Detail:         pagination.AbsoluteURL(c.Request, fmt.Sprintf("/api/v1/books/%d", book.ID)),
			AddReview:      pagination.AbsoluteURL(c.Request, fmt.Sprintf("/api/v1/book/%d/review", book.ID)),
			AverageRating:  book.AverageRating,
			ReviewQuantity: book.ReviewQuantity,
		})
	}

	next, previous := params.Links(c.Request, total)
	response.Paginated(c, total, next, previous, results)
}

// Create creates a book (admin only)
// POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// Get returns the book detail with its author, reviews and aggregates
// GET /api/v1/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := h.bookService.GetBook(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// Update applies a partial book update, optionally editing the author
// PUT /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	book, err := h.bookService.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// Delete removes a book and its reviews
// DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.bookService.DeleteBook(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c)
	case errors.Is(err, authorModel.ErrAuthorNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"author": "author does not exist"})
	case errors.Is(err, model.ErrISBNTaken):
		c.JSON(http.StatusBadRequest, gin.H{"ISBN": "book with this ISBN already exists."})
	case errors.Is(err, model.ErrInvalidISBN):
		c.JSON(http.StatusBadRequest, gin.H{"ISBN": err.Error()})
	default:
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.ServerError(c, err)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid book ID")
		return 0, false
	}
	return id, true
}
