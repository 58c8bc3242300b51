package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	// BookPageSize is the default page size for a book's review listing.
	BookPageSize = 5
)

// Review is a single user's opinion of a book. A user may review a book at
// most once; the check lives in the service layer, not the schema.
type Review struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"-"`
	BookID    int64     `json:"book"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewWithOwner carries the owner's username joined from the users table.
type ReviewWithOwner struct {
	Review
	Owner string `json:"owner"`
}

// ReviewWithBook carries the reviewed book's title, used on the caller's own
// review listing.
type ReviewWithBook struct {
	Review
	BookTitle string `json:"book_title"`
}
