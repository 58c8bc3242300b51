package model

import (
	"bookreview-backend/internal/shared"
)

// Book belongs to exactly one author and cascade-deletes its reviews. The
// ISBN is stored in its hyphen-segmented display form and is unique.
type Book struct {
	ID          int64        `json:"id"`
	AuthorID    int64        `json:"author"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Published   *shared.Date `json:"published"`
	Image       *string      `json:"image"`
	ISBN        string       `json:"ISBN"`
}

// BookWithStats pairs a book with its derived review figures and the
// author's display name, computed at read time by the storage layer.
type BookWithStats struct {
	Book
	BookAuthor     string  `json:"book_author"`
	AverageRating  float64 `json:"average_rating"`
	ReviewQuantity int     `json:"review_quantity"`
}
