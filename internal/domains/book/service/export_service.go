package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/repository"
)

const csvTimestampLayout = "2006-01-02 15:04:05"

// csvHeader is the documented, fixed column order of the export.
var csvHeader = []string{"ID", "Title", "Author", "Description", "Publication Year", "ISBN", "Created At", "Updated At"}

// exportService - CSV export of filtered books
type exportService struct {
	repo repository.RepositoryInterface
}

// NewExportService - constructor with DI
func NewExportService(repo repository.RepositoryInterface) ExportServiceInterface {
	return &exportService{repo: repo}
}

// ExportCSV renders up to limit filtered books as CSV and returns the
// file body plus a filename encoding the active filters.
func (s *exportService) ExportCSV(ctx context.Context, filter *model.BookFilter, limit int) ([]byte, string, error) {
	books, _, err := s.repo.List(ctx, filter, limit, 0)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, b := range books {
		if err := w.Write(csvRow(&b)); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	log.Debug().Int("exported", len(books)).Msg("Books exported to CSV")

	return buf.Bytes(), buildExportFilename(filter), nil
}

func csvRow(b *model.Book) []string {
	return []string{
		strconv.FormatInt(b.ID, 10),
		b.Title,
		b.Author,
		derefString(b.Description),
		derefYear(b.PublicationYear),
		derefString(b.ISBN),
		b.CreatedAt.Format(csvTimestampLayout),
		b.UpdatedAt.Format(csvTimestampLayout),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefYear(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}

var filenameUnsafePattern = regexp.MustCompile(`[^A-Za-z0-9-]+`)

// buildExportFilename encodes the active filters into the download
// name, e.g. books_export_title-Dune_author-Herbert.csv.
func buildExportFilename(filter *model.BookFilter) string {
	parts := []string{"books_export"}

	appendPart := func(field, value string) {
		value = strings.Trim(filenameUnsafePattern.ReplaceAllString(value, "-"), "-")
		if value != "" {
			parts = append(parts, field+"-"+value)
		}
	}

	if filter != nil {
		appendPart("title", filter.Title)
		appendPart("author", filter.Author)
		if filter.PublicationYear != nil {
			appendPart("publication_year", strconv.Itoa(*filter.PublicationYear))
		}
		appendPart("isbn", filter.ISBN)
	}

	return strings.Join(parts, "_") + ".csv"
}
