package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/repository"
)

// importService - bulk JSON import reconciler
type importService struct {
	repo repository.RepositoryInterface
}

// NewImportService - constructor with DI
func NewImportService(repo repository.RepositoryInterface) ImportServiceInterface {
	return &importService{repo: repo}
}

// ImportJSON processes an uploaded JSON dump. Each record is validated
// and persisted independently, in input order; a failing record is
// accounted for and skipped, never rolling back earlier successes.
// The batch stays resumable: re-running the file after fixing bad
// records only conflicts on already-imported ISBNs.
func (s *importService) ImportJSON(ctx context.Context, filename string, file io.Reader) (*model.ImportResult, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".json") {
		return nil, model.ErrUnsupportedFile
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	items, err := decodeItems(content)
	if err != nil {
		return nil, err
	}

	result := &model.ImportResult{}
	for idx, item := range items {
		req, err := decodeItem(item)
		if err == nil {
			err = req.Validate()
		}
		if err != nil {
			result.FailedImports++
			result.Errors = append(result.Errors, fmt.Sprintf("book #%d: %v", idx+1, err))
			continue
		}

		if _, err := s.repo.Create(ctx, req); err != nil {
			result.FailedImports++
			result.Errors = append(result.Errors, fmt.Sprintf("book #%d: %v", idx+1, err))
			continue
		}

		result.SuccessfulImports++
	}

	log.Info().
		Str("file_name", filename).
		Int("successful", result.SuccessfulImports).
		Int("failed", result.FailedImports).
		Msg("Bulk import completed")

	return result, nil
}

// decodeItems accepts either an array of book objects or a single
// object, which is treated as a one-item batch.
func decodeItems(content []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, model.ErrInvalidJSON
		}
		return items, nil
	case bytes.HasPrefix(trimmed, []byte("{")):
		if !json.Valid(trimmed) {
			return nil, model.ErrInvalidJSON
		}
		return []json.RawMessage{trimmed}, nil
	default:
		return nil, model.ErrInvalidJSON
	}
}

func decodeItem(item json.RawMessage) (*model.CreateBookRequest, error) {
	var req model.CreateBookRequest
	if err := json.Unmarshal(item, &req); err != nil {
		return nil, fmt.Errorf("malformed record: %v", err)
	}
	return &req, nil
}
