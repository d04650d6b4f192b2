package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/book/model"
)

func TestExportCSV(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	var gotLimit, gotOffset int
	repo := &stubRepository{
		listFn: func(_ context.Context, _ *model.BookFilter, limit, offset int) ([]model.Book, int, error) {
			gotLimit, gotOffset = limit, offset
			return []model.Book{
				{
					ID:              1,
					Title:           "Dune",
					Author:          "Frank Herbert",
					Description:     strPtr("A desert planet epic"),
					PublicationYear: intPtr(1965),
					ISBN:            strPtr("9780441172719"),
					CreatedAt:       createdAt,
					UpdatedAt:       createdAt,
				},
				{
					ID:        2,
					Title:     "Untitled, Draft",
					Author:    "Anonymous",
					CreatedAt: createdAt,
					UpdatedAt: createdAt,
				},
			}, 2, nil
		},
	}
	svc := NewExportService(repo)

	data, filename, err := svc.ExportCSV(context.Background(), &model.BookFilter{}, 500)
	require.NoError(t, err)

	assert.Equal(t, 500, gotLimit)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, "books_export.csv", filename)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Title", "Author", "Description", "Publication Year", "ISBN", "Created At", "Updated At"}, records[0])
	assert.Equal(t, []string{"1", "Dune", "Frank Herbert", "A desert planet epic", "1965", "9780441172719", "2024-03-15 09:30:00", "2024-03-15 09:30:00"}, records[1])

	// optional fields render empty, commas in values survive quoting
	assert.Equal(t, []string{"2", "Untitled, Draft", "Anonymous", "", "", "", "2024-03-15 09:30:00", "2024-03-15 09:30:00"}, records[2])
}

func TestExportCSVEmptyResult(t *testing.T) {
	repo := &stubRepository{
		listFn: func(_ context.Context, _ *model.BookFilter, _, _ int) ([]model.Book, int, error) {
			return nil, 0, nil
		},
	}
	svc := NewExportService(repo)

	data, _, err := svc.ExportCSV(context.Background(), nil, 1000)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestExportCSVRepositoryError(t *testing.T) {
	repo := &stubRepository{
		listFn: func(_ context.Context, _ *model.BookFilter, _, _ int) ([]model.Book, int, error) {
			return nil, 0, errors.New("connection reset")
		},
	}
	svc := NewExportService(repo)

	_, _, err := svc.ExportCSV(context.Background(), nil, 1000)
	assert.Error(t, err)
}

func TestBuildExportFilename(t *testing.T) {
	year := 1965

	tests := []struct {
		name   string
		filter *model.BookFilter
		want   string
	}{
		{name: "nil filter", filter: nil, want: "books_export.csv"},
		{name: "empty filter", filter: &model.BookFilter{}, want: "books_export.csv"},
		{
			name:   "single term",
			filter: &model.BookFilter{Title: "Dune"},
			want:   "books_export_title-Dune.csv",
		},
		{
			name:   "spaces become hyphens",
			filter: &model.BookFilter{Author: "Frank Herbert"},
			want:   "books_export_author-Frank-Herbert.csv",
		},
		{
			name: "all terms in fixed order",
			filter: &model.BookFilter{
				Title:           "Dune",
				Author:          "Herbert",
				PublicationYear: &year,
				ISBN:            "9780441172719",
			},
			want: "books_export_title-Dune_author-Herbert_publication_year-1965_isbn-9780441172719.csv",
		},
		{
			name:   "unsafe characters stripped",
			filter: &model.BookFilter{Title: "../etc/passwd"},
			want:   "books_export_title-etc-passwd.csv",
		},
		{
			name:   "term of only unsafe characters is dropped",
			filter: &model.BookFilter{Title: "!!!"},
			want:   "books_export.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildExportFilename(tt.filter))
		})
	}
}
