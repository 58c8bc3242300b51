package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookreview-backend/internal/shared"
)

// ========================================
// REQUEST DTOs
// ========================================

// AuthorPayload carries author fields for create and update requests. It is
// also accepted nested inside a book update.
type AuthorPayload struct {
	Name      string       `json:"name"`
	LastName  string       `json:"last_name"`
	Bio       *string      `json:"bio"`
	Image     *string      `json:"image"`
	BirthDate *shared.Date `json:"birth_date"`
	DeathDate *shared.Date `json:"death_date"`
}

func (p AuthorPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 120),
		),
		validation.Field(&p.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 120),
		),
	)
}

// Apply copies payload fields onto an author entity.
func (p AuthorPayload) Apply(a *Author) {
	a.Name = p.Name
	a.LastName = p.LastName
	a.Bio = p.Bio
	if p.Image != nil {
		a.Image = p.Image
	}
	a.BirthDate = p.BirthDate
	a.DeathDate = p.DeathDate
}

// ========================================
// RESPONSE DTOs
// ========================================

// AuthorListItem is the compact listing entry with a hyperlink to the detail
// endpoint.
type AuthorListItem struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Details  string `json:"details"`
}

// AuthorDetailResponse includes the titles of the author's books.
type AuthorDetailResponse struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	LastName     string       `json:"last_name"`
	Bio          *string      `json:"bio"`
	Image        *string      `json:"image"`
	BirthDate    *shared.Date `json:"birth_date"`
	DeathDate    *shared.Date `json:"death_date"`
	WrittenBooks []string     `json:"written_books"`
}

func (a *Author) ToDetailResponse(writtenBooks []string) AuthorDetailResponse {
	if writtenBooks == nil {
		writtenBooks = []string{}
	}
	return AuthorDetailResponse{
		ID:           a.ID,
		Name:         a.Name,
		LastName:     a.LastName,
		Bio:          a.Bio,
		Image:        a.Image,
		BirthDate:    a.BirthDate,
		DeathDate:    a.DeathDate,
		WrittenBooks: writtenBooks,
	}
}
