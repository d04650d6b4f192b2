package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/repository"
)

// BookService - implements ServiceInterface
type BookService struct {
	repo repository.RepositoryInterface
}

// NewBookService - constructor with DI
func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &BookService{repo: repo}
}

// ListBooks returns one page of books plus pagination metadata. The
// caller boundary guarantees page >= 1 and pageSize in [1,100]; the
// repository itself tolerates any pageSize >= 1.
func (s *BookService) ListBooks(ctx context.Context, filter *model.BookFilter, page, pageSize int) ([]model.Book, *model.PaginationMeta, error) {
	offset := (page - 1) * pageSize

	books, total, err := s.repo.List(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, nil, err
	}

	meta := model.NewPaginationMeta(total, page, pageSize)

	log.Debug().
		Int("returned", len(books)).
		Int("total", total).
		Int("page", page).
		Msg("Books listed")

	return books, &meta, nil
}

func (s *BookService) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	book, err := s.repo.Create(ctx, &req)
	if err != nil {
		return nil, err
	}

	log.Debug().Int64("book_id", book.ID).Msg("Book created")
	return book, nil
}

// UpdateBook applies only the fields present in the patch; omitted
// fields keep their prior values.
func (s *BookService) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	book, err := s.repo.Update(ctx, id, &req)
	if err != nil {
		return nil, err
	}

	log.Debug().Int64("book_id", book.ID).Msg("Book updated")
	return book, nil
}

// DeleteBook removes the record. A second delete of the same id
// reports ErrBookNotFound, not a failure.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrBookNotFound
	}

	log.Debug().Int64("book_id", id).Msg("Book deleted")
	return nil
}
