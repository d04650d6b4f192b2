package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/shared/response"
)

// MetadataHandler - HTTP handler for metadata enrichment
type MetadataHandler struct {
	service service.MetadataServiceInterface
}

// NewMetadataHandler - constructor with DI
func NewMetadataHandler(service service.MetadataServiceInterface) *MetadataHandler {
	return &MetadataHandler{service: service}
}

// EnrichBook - GET /v1/books/:id/metadata
// Fetches provider metadata by the book's ISBN, merges and persists
// it, then returns the updated record.
func (h *MetadataHandler) EnrichBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.service.EnrichBook(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book enriched with metadata", book)
}
