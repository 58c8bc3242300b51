package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrISBNTaken    = errors.New("book with this ISBN already exists")
	ErrInvalidISBN  = errors.New("ISBN must be exactly 13 characters")
)
