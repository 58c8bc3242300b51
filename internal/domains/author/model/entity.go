package model

import (
	"bookreview-backend/internal/shared"
)

// Author owns zero or more books; deleting an author cascades to its books
// and their reviews.
type Author struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	LastName  string       `json:"last_name"`
	Bio       *string      `json:"bio"`
	Image     *string      `json:"image"`
	BirthDate *shared.Date `json:"birth_date"`
	DeathDate *shared.Date `json:"death_date"`
}

// DisplayName is the derived "<name> <last_name>" form shown on books.
func (a *Author) DisplayName() string {
	return a.Name + " " + a.LastName
}
