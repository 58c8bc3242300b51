package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookreview-backend/internal/domains/author/model"
	"bookreview-backend/internal/domains/author/service"
	"bookreview-backend/internal/shared/pagination"
	"bookreview-backend/internal/shared/response"
)

type AuthorHandler struct {
	authorService service.ServiceInterface
}

func NewAuthorHandler(authorService service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// List returns a paginated author collection
// GET /api/v1/authors
func (h *AuthorHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Request, pagination.DefaultPageSize)

	authors, total, err := h.authorService.ListAuthors(c.Request.Context(), params.PageSize, params.Offset())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	results := make([]model.AuthorListItem, 0, len(authors))
	for _, author := range authors {
		results = append(results, model.AuthorListItem{
			Name:     author.Name,
			LastName: author.LastName,
			Details:  pagination.AbsoluteURL(c.Request, fmt.Sprintf("/api/v1/authors/%d", author.ID)),
		})
	}

	next, previous := params.Links(c.Request, total)
	response.Paginated(c, total, next, previous, results)
}

// Create creates an author (admin only)
// POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.AuthorPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	author, err := h.authorService.CreateAuthor(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, author)
}

// Get returns the author detail with written book titles
// GET /api/v1/authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	author, err := h.authorService.GetAuthor(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, author)
}

// Update replaces an author's fields (admin only)
// PUT /api/v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.AuthorPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	author, err := h.authorService.UpdateAuthor(c.Request.Context(), id, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, author)
}

// Delete removes an author (admin only)
// DELETE /api/v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.authorService.DeleteAuthor(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthorHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		response.NotFound(c)
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
		response.Detail(c, http.StatusBadRequest, "Invalid author ID")
		return 0, false
	}
	return id, true
}
