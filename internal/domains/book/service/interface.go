package service

import (
	"context"
	"io"

	"bookcatalog-backend/internal/domains/book/model"
)

// ServiceInterface defines book CRUD and listing business logic.
type ServiceInterface interface {
	ListBooks(ctx context.Context, filter *model.BookFilter, page, pageSize int) ([]model.Book, *model.PaginationMeta, error)
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

// ImportServiceInterface processes bulk JSON imports.
type ImportServiceInterface interface {
	// ImportJSON validates and persists each record independently and
	// never rolls back earlier successes on later failures.
	ImportJSON(ctx context.Context, filename string, file io.Reader) (*model.ImportResult, error)
}

// ExportServiceInterface renders filtered books as CSV.
type ExportServiceInterface interface {
	// ExportCSV returns the rendered file and a filename encoding the
	// active filters.
	ExportCSV(ctx context.Context, filter *model.BookFilter, limit int) ([]byte, string, error)
}

// MetadataServiceInterface enriches a book from the external provider.
type MetadataServiceInterface interface {
	EnrichBook(ctx context.Context, id int64) (*model.Book, error)
}
