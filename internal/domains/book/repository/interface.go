package repository

import (
	"context"

	"bookcatalog-backend/internal/domains/book/model"
)

// RepositoryInterface defines data access for book records.
type RepositoryInterface interface {
	// List returns one page of books matching the filter plus the total
	// count scoped to the same predicate.
	List(ctx context.Context, filter *model.BookFilter, limit, offset int) ([]model.Book, int, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	// Update applies only the non-nil fields of the patch and refreshes
	// updated_at.
	Update(ctx context.Context, id int64, patch *model.UpdateBookRequest) (*model.Book, error)
	// Delete reports whether a record existed and was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
