package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/repository"
	"bookcatalog-backend/internal/infrastructure/metadata"
)

// metadataService - enrichment of a book from the external provider
type metadataService struct {
	repo    repository.RepositoryInterface
	fetcher metadata.Fetcher
}

// NewMetadataService - constructor with DI
func NewMetadataService(repo repository.RepositoryInterface, fetcher metadata.Fetcher) MetadataServiceInterface {
	return &metadataService{repo: repo, fetcher: fetcher}
}

// EnrichBook fetches provider metadata by the book's ISBN, merges it
// and persists the result. The path is fail-fast: a fetch error aborts
// the whole operation and the book stays unmodified.
func (s *metadataService) EnrichBook(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !book.HasISBN() {
		return nil, model.ErrBookHasNoISBN
	}

	md, err := s.fetcher.FetchByISBN(ctx, *book.ISBN)
	if err != nil {
		return nil, err
	}

	patch := mergeMetadata(book, md)
	if patch.IsEmpty() {
		log.Debug().Int64("book_id", id).Msg("Metadata carried nothing to merge")
		return book, nil
	}

	updated, err := s.repo.Update(ctx, id, &patch)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("book_id", id).Str("isbn", *book.ISBN).Msg("Book enriched with metadata")
	return updated, nil
}

// mergeMetadata folds provider metadata into an update patch. Each
// rule is applied independently:
//
//   - title: the provider is authoritative and overwrites whenever it
//     has a non-empty title (a compatibility contract, kept even
//     though it can surprise callers who only wanted gaps filled)
//   - description: fills only an empty description
//   - author: fills only an empty author, first listed author only;
//     the Book schema is single-valued and stays that way
//   - cover_url: always taken when present
//   - genre: first genre's name as a single string
//   - publication_date: converted to a calendar year before it
//     touches the integer publication_year field, and dropped when
//     the year falls outside the valid range
func mergeMetadata(book *model.Book, md *model.BookMetadata) model.UpdateBookRequest {
	var patch model.UpdateBookRequest

	if md.Title != "" {
		title := md.Title
		patch.Title = &title
	}

	if derefString(book.Description) == "" && derefString(md.Description) != "" {
		patch.Description = md.Description
	}

	if book.Author == "" && len(md.Authors) > 0 && md.Authors[0].Name != "" {
		author := md.Authors[0].Name
		patch.Author = &author
	}

	if derefString(md.CoverURL) != "" {
		patch.CoverURL = md.CoverURL
	}

	if len(md.Genres) > 0 && md.Genres[0].Name != "" {
		genre := md.Genres[0].Name
		patch.Genre = &genre
	}

	if md.PublicationDate != nil && !md.PublicationDate.IsZero() {
		year := md.PublicationDate.Year()
		if year >= 1000 && year <= time.Now().Year() {
			patch.PublicationYear = &year
		}
	}

	return patch
}
