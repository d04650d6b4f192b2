package model

import (
	"time"
)

// Book represents the persisted book entity
type Book struct {
	ID     int64  `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`

	Description     *string `json:"description,omitempty" db:"description"`
	PublicationYear *int    `json:"publication_year,omitempty" db:"publication_year"`
	ISBN            *string `json:"isbn,omitempty" db:"isbn"`

	// Populated by metadata enrichment, empty otherwise
	Genre    *string `json:"genre,omitempty" db:"genre"`
	CoverURL *string `json:"cover_url,omitempty" db:"cover_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasISBN reports whether the book carries a non-empty ISBN.
func (b *Book) HasISBN() bool {
	return b.ISBN != nil && *b.ISBN != ""
}

// BookFilter holds the recognized list/export filters.
// title and author match as case-insensitive substrings,
// publication_year and isbn match exactly.
type BookFilter struct {
	Title           string
	Author          string
	PublicationYear *int
	ISBN            string
}

// IsEmpty reports whether no filter term is set.
func (f *BookFilter) IsEmpty() bool {
	return f.Title == "" && f.Author == "" && f.PublicationYear == nil && f.ISBN == ""
}
