package service

import (
	"context"

	"bookcatalog-backend/internal/domains/book/model"
)

// stubRepository lets each test wire only the calls it expects.
type stubRepository struct {
	listFn   func(ctx context.Context, filter *model.BookFilter, limit, offset int) ([]model.Book, int, error)
	getFn    func(ctx context.Context, id int64) (*model.Book, error)
	createFn func(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	updateFn func(ctx context.Context, id int64, patch *model.UpdateBookRequest) (*model.Book, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (s *stubRepository) List(ctx context.Context, filter *model.BookFilter, limit, offset int) ([]model.Book, int, error) {
	return s.listFn(ctx, filter, limit, offset)
}

func (s *stubRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.getFn(ctx, id)
}

func (s *stubRepository) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	return s.createFn(ctx, req)
}

func (s *stubRepository) Update(ctx context.Context, id int64, patch *model.UpdateBookRequest) (*model.Book, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleteFn(ctx, id)
}

type stubFetcher struct {
	fetchFn func(ctx context.Context, isbn string) (*model.BookMetadata, error)
}

func (s *stubFetcher) FetchByISBN(ctx context.Context, isbn string) (*model.BookMetadata, error) {
	return s.fetchFn(ctx, isbn)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
