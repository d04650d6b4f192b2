package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/shared/response"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// Handler - HTTP handler for book CRUD
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /v1/books
// Query params: title, author, publication_year, isbn, page, page_size
func (h *Handler) ListBooks(c *gin.Context) {
	filter := parseBookFilter(c)
	page, pageSize := parsePagination(c)

	books, meta, err := h.service.ListBooks(c.Request.Context(), filter, page, pageSize)
	if model.HandleBookError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Books retrieved successfully", books, meta)
}

// GetBook - GET /v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.service.GetBook(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", book)
}

// CreateBook - POST /v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("Invalid create book request body")
		response.BadRequest(c, "Request body must be a valid JSON book object")
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", book)
}

// UpdateBook - PUT /v1/books/:id
// Only fields present in the body are applied.
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("Invalid update book request body")
		response.BadRequest(c, "Request body must be a valid JSON book object")
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", book)
}

// DeleteBook - DELETE /v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("Book with ID %d successfully deleted", id), nil)
}

// ========================================
// QUERY PARSING HELPERS
// ========================================

func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "Book ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// parseBookFilter reads the recognized filter params; anything else in
// the query string is ignored.
func parseBookFilter(c *gin.Context) *model.BookFilter {
	filter := &model.BookFilter{
		Title:  c.Query("title"),
		Author: c.Query("author"),
		ISBN:   c.Query("isbn"),
	}

	if yearStr := c.Query("publication_year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.PublicationYear = &year
		}
	}

	return filter
}

// parsePagination falls back to defaults for missing or out-of-range
// values rather than rejecting the request.
func parsePagination(c *gin.Context) (page, pageSize int) {
	page = defaultPage
	pageSize = defaultPageSize

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p >= 1 {
			page = p
		}
	}

	if sizeStr := c.Query("page_size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s >= 1 && s <= maxPageSize {
			pageSize = s
		}
	}

	return page, pageSize
}
