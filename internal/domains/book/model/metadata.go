package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ========================================
// METADATA PROVIDER PAYLOAD
// ========================================

// BookMetadata is the transient record returned by the external
// metadata provider. It is never persisted in this shape; selected
// fields are folded into a Book by the enrichment merge.
type BookMetadata struct {
	ISBN            string             `json:"isbn"`
	Title           string             `json:"title"`
	Authors         []MetadataAuthor   `json:"authors"`
	Publisher       *MetadataPublisher `json:"publisher,omitempty"`
	PublicationDate *MetadataDate      `json:"publication_date,omitempty"`
	Language        *string            `json:"language,omitempty"`
	Pages           *int               `json:"pages,omitempty"`
	CoverURL        *string            `json:"cover_url,omitempty"`
	Description     *string            `json:"description,omitempty"`
	Genres          []MetadataGenre    `json:"genres,omitempty"`
	Ratings         []MetadataRating   `json:"ratings,omitempty"`
}

type MetadataAuthor struct {
	Name      string  `json:"name"`
	BirthYear *int    `json:"birth_year,omitempty"`
	DeathYear *int    `json:"death_year,omitempty"`
	Country   *string `json:"country,omitempty"`
}

type MetadataPublisher struct {
	Name    string  `json:"name"`
	Country *string `json:"country,omitempty"`
	Website *string `json:"website,omitempty"`
}

type MetadataGenre struct {
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`
}

type MetadataRating struct {
	Average float64 `json:"average"`
	Votes   int     `json:"votes"`
	Source  string  `json:"source"`
}

// ========================================
// PUBLICATION DATE
// ========================================

// metadataDateLayouts are tried in order when decoding the provider's
// publication_date field, which is not consistent across sources.
var metadataDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006",
}

// MetadataDate is a calendar date from the provider. The merge uses
// Year() only; the full date is never written into a Book.
type MetadataDate struct {
	time.Time
}

func (d *MetadataDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range metadataDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized publication_date %q", raw)
}

func (d MetadataDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}
