package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	authorModel "bookreview-backend/internal/domains/author/model"
	reviewModel "bookreview-backend/internal/domains/review/model"
	"bookreview-backend/internal/shared"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateBookRequest struct {
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Published   *shared.Date `json:"published"`
	Image       *string      `json:"image"`
	ISBN        string       `json:"ISBN"`
	Author      int64        `json:"author"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("ISBN is required"),
			validation.Length(13, 13).Error("ISBN must be exactly 13 characters"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
		),
	)
}

// UpdateBookRequest allows partial edits. A nested author payload updates the
// book's current author in place and is saved before the book's own fields.
type UpdateBookRequest struct {
	Title       *string                    `json:"title"`
	Description *string                    `json:"description"`
	Published   *shared.Date               `json:"published"`
	Image       *string                    `json:"image"`
	ISBN        *string                    `json:"ISBN"`
	Author      *authorModel.AuthorPayload `json:"author"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ISBN,
			validation.Length(13, 13).Error("ISBN must be exactly 13 characters"),
		),
	)
}

// Apply copies the provided scalar fields onto a book entity. The nested
// author payload is handled separately by the service.
func (r UpdateBookRequest) Apply(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Description != nil {
		b.Description = r.Description
	}
	if r.Published != nil {
		b.Published = r.Published
	}
	if r.Image != nil {
		b.Image = r.Image
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

// BookListItem is the compact listing entry. The author appears as a display
// name and the hyperlinks point at the detail and review-creation endpoints.
type BookListItem struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	BookAuthor     string  `json:"book_author"`
	Detail         string  `json:"detail"`
	AddReview      string  `json:"add_review"`
	AverageRating  float64 `json:"average_rating"`
	ReviewQuantity int     `json:"review_quantity"`
}

// BookDetailResponse embeds the full author and every review of the book.
type BookDetailResponse struct {
	ID             int64                        `json:"id"`
	Title          string                       `json:"title"`
	Description    *string                      `json:"description"`
	Published      *shared.Date                 `json:"published"`
	Image          *string                      `json:"image"`
	ISBN           string                       `json:"ISBN"`
	Author         authorModel.Author           `json:"author"`
	Reviews        []reviewModel.ReviewResponse `json:"reviews"`
	AverageRating  float64                      `json:"average_rating"`
	ReviewQuantity int                          `json:"review_quantity"`
}
