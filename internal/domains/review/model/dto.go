package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateReviewRequest struct {
	Body   string `json:"body"`
	Rating int    `json:"rating"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(MinRating).Error("rating must be between 1 and 5"),
			validation.Max(MaxRating).Error("rating must be between 1 and 5"),
		),
	)
}

// UpdateReviewRequest allows partial edits; absent fields keep their stored
// value.
type UpdateReviewRequest struct {
	Body   *string `json:"body"`
	Rating *int    `json:"rating"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body,
			validation.NilOrNotEmpty.Error("body is required"),
		),
		validation.Field(&r.Rating,
			validation.Min(MinRating).Error("rating must be between 1 and 5"),
			validation.Max(MaxRating).Error("rating must be between 1 and 5"),
		),
	)
}

// Apply copies the provided fields onto a review entity.
func (r UpdateReviewRequest) Apply(review *Review) {
	if r.Body != nil {
		review.Body = *r.Body
	}
	if r.Rating != nil {
		review.Rating = *r.Rating
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

// ReviewResponse identifies the owner by username rather than id.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	Owner     string    `json:"owner"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ReviewWithOwner) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Owner:     r.Owner,
		Body:      r.Body,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// MyReviewItem is the caller-facing entry on the own-review listing, with a
// hyperlink for editing.
type MyReviewItem struct {
	BookTitle string `json:"book_title"`
	Body      string `json:"body"`
	Rating    int    `json:"rating"`
	UpdateURL string `json:"update_url"`
}
