package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// BOOK DTOs
// ========================================

// CreateBookRequest is the payload for POST /books and for each
// item of a bulk JSON import.
type CreateBookRequest struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Description     *string `json:"description,omitempty"`
	PublicationYear *int    `json:"publication_year,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("is required"),
			validation.Length(1, 255).Error("must be between 1 and 255 characters"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("is required"),
			validation.Length(1, 255).Error("must be between 1 and 255 characters"),
		),
		validation.Field(&r.PublicationYear,
			validation.By(validatePublicationYear),
		),
		validation.Field(&r.ISBN,
			validation.Length(0, 20).Error("must be at most 20 characters"),
			validation.By(validateISBN),
		),
	)
}

// UpdateBookRequest is the payload for PUT /books/:id. Every field is
// a pointer: a nil field is left untouched, a present field is applied.
// Sending an explicit empty string clears a text field.
type UpdateBookRequest struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	Description     *string `json:"description,omitempty"`
	PublicationYear *int    `json:"publication_year,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	CoverURL        *string `json:"cover_url,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("cannot be blank"),
			validation.Length(1, 255).Error("must be between 1 and 255 characters"),
		),
		validation.Field(&r.Author,
			validation.NilOrNotEmpty.Error("cannot be blank"),
			validation.Length(1, 255).Error("must be between 1 and 255 characters"),
		),
		validation.Field(&r.PublicationYear,
			validation.By(validatePublicationYear),
		),
		validation.Field(&r.ISBN,
			validation.Length(0, 20).Error("must be at most 20 characters"),
			validation.By(validateISBN),
		),
	)
}

// IsEmpty reports whether the patch carries no field at all.
func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.Author == nil && r.Description == nil &&
		r.PublicationYear == nil && r.ISBN == nil && r.Genre == nil && r.CoverURL == nil
}

// ========================================
// FIELD VALIDATION
// ========================================

// validatePublicationYear bounds any present year to [1000, current
// year]. A validation.By rule rather than Min/Max: threshold rules
// treat 0 as empty and would wave it through.
func validatePublicationYear(value interface{}) error {
	var year int
	switch v := value.(type) {
	case int:
		year = v
	case *int:
		if v == nil {
			return nil
		}
		year = *v
	default:
		return errors.New("must be an integer")
	}
	if year < 1000 {
		return errors.New("must be 1000 or later")
	}
	if year > time.Now().Year() {
		return errors.New("must not be in the future")
	}
	return nil
}

var isbnCharsPattern = regexp.MustCompile(`^[0-9-]+$`)

// validateISBN enforces the loose digit/hyphen ISBN shape:
// only digits and hyphens, with exactly 10 or 13 digits overall.
func validateISBN(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return errors.New("must be a string")
	}
	if s == "" {
		return nil
	}
	if !isbnCharsPattern.MatchString(s) {
		return errors.New("must contain only digits and hyphens")
	}
	digits := len(strings.ReplaceAll(s, "-", ""))
	if digits != 10 && digits != 13 {
		return errors.New("must contain 10 or 13 digits")
	}
	return nil
}
