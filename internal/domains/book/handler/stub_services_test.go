package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/book/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubBookService struct {
	listFn   func(ctx context.Context, filter *model.BookFilter, page, pageSize int) ([]model.Book, *model.PaginationMeta, error)
	getFn    func(ctx context.Context, id int64) (*model.Book, error)
	createFn func(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	updateFn func(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubBookService) ListBooks(ctx context.Context, filter *model.BookFilter, page, pageSize int) ([]model.Book, *model.PaginationMeta, error) {
	return s.listFn(ctx, filter, page, pageSize)
}

func (s *stubBookService) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	return s.getFn(ctx, id)
}

func (s *stubBookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	return s.createFn(ctx, req)
}

func (s *stubBookService) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubBookService) DeleteBook(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubImportService struct {
	importFn func(ctx context.Context, filename string, file io.Reader) (*model.ImportResult, error)
}

func (s *stubImportService) ImportJSON(ctx context.Context, filename string, file io.Reader) (*model.ImportResult, error) {
	return s.importFn(ctx, filename, file)
}

type stubExportService struct {
	exportFn func(ctx context.Context, filter *model.BookFilter, limit int) ([]byte, string, error)
}

func (s *stubExportService) ExportCSV(ctx context.Context, filter *model.BookFilter, limit int) ([]byte, string, error) {
	return s.exportFn(ctx, filter, limit)
}

type stubMetadataService struct {
	enrichFn func(ctx context.Context, id int64) (*model.Book, error)
}

func (s *stubMetadataService) EnrichBook(ctx context.Context, id int64) (*model.Book, error) {
	return s.enrichFn(ctx, id)
}

// newBookRouter mounts the CRUD handler on the production route shape.
func newBookRouter(svc *stubBookService) *gin.Engine {
	h := NewHandler(svc)
	router := gin.New()
	books := router.Group("/api/v1/books")
	books.GET("", h.ListBooks)
	books.POST("", h.CreateBook)
	books.GET("/:id", h.GetBook)
	books.PUT("/:id", h.UpdateBook)
	books.DELETE("/:id", h.DeleteBook)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *model.PaginationMeta `json:"meta"`
}

func doRequest(t *testing.T, router *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func strPtr(s string) *string { return &s }
