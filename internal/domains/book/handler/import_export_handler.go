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
	defaultExportLimit = 1000
	maxExportLimit     = 10000
)

// ImportExportHandler - HTTP handler for bulk import and CSV export
type ImportExportHandler struct {
	importService service.ImportServiceInterface
	exportService service.ExportServiceInterface
}

// NewImportExportHandler - constructor with DI
func NewImportExportHandler(importService service.ImportServiceInterface, exportService service.ExportServiceInterface) *ImportExportHandler {
	return &ImportExportHandler{
		importService: importService,
		exportService: exportService,
	}
}

// ImportJSON - POST /v1/books/import/json
// Multipart upload, field "file", .json extension required.
func (h *ImportExportHandler) ImportJSON(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Request must include a multipart file field named 'file'")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("file_name", fileHeader.Filename).Msg("Failed to open uploaded file")
		response.InternalServerError(c, "Failed to read uploaded file")
		return
	}
	defer src.Close()

	result, err := h.importService.ImportJSON(c.Request.Context(), fileHeader.Filename, src)
	if model.HandleBookError(c, err) {
		return
	}

	message := fmt.Sprintf("Import completed: %d successful, %d failed",
		result.SuccessfulImports, result.FailedImports)
	response.Success(c, http.StatusOK, message, result)
}

// ExportCSV - GET /v1/books/export/csv
// Same filters as listing, plus an optional limit.
func (h *ImportExportHandler) ExportCSV(c *gin.Context) {
	filter := parseBookFilter(c)

	limit := defaultExportLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l >= 1 && l <= maxExportLimit {
			limit = l
		}
	}

	data, filename, err := h.exportService.ExportCSV(c.Request.Context(), filter, limit)
	if model.HandleBookError(c, err) {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
