package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/shared/response"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrISBNAlreadyExists = errors.New("ISBN already exists")
	ErrBookHasNoISBN     = errors.New("book has no ISBN")

	// Bulk import file errors
	ErrUnsupportedFile = errors.New("uploaded file must be in JSON format")
	ErrInvalidJSON     = errors.New("file is not valid JSON")

	// Metadata provider errors
	ErrProviderUnavailable = errors.New("metadata provider unreachable")
	ErrProviderResponse    = errors.New("metadata provider returned an invalid response")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The specified book does not exist",
	},
	ErrISBNAlreadyExists: {
		Status:  http.StatusConflict,
		Code:    "CONFLICT",
		Message: "This ISBN is already registered in the system",
	},
	ErrBookHasNoISBN: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "The book has no ISBN, metadata cannot be fetched",
	},
	ErrUnsupportedFile: {
		Status:  http.StatusBadRequest,
		Code:    "UNSUPPORTED_MEDIA",
		Message: "Uploaded file must be in JSON format",
	},
	ErrInvalidJSON: {
		Status:  http.StatusBadRequest,
		Code:    "UNSUPPORTED_MEDIA",
		Message: "Uploaded file is not valid JSON",
	},
	ErrProviderUnavailable: {
		Status:  http.StatusServiceUnavailable,
		Code:    "EXTERNAL_SERVICE_ERROR",
		Message: "Metadata provider is unreachable",
	},
	ErrProviderResponse: {
		Status:  http.StatusBadGateway,
		Code:    "EXTERNAL_SERVICE_ERROR",
		Message: "Metadata provider returned an invalid response",
	},
}

// HandleBookError writes the mapped error response and returns true when
// err is non-nil. Validation errors keep their field-by-field message;
// anything unclassified becomes a redacted 500.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", verrs.Error(), verrs)
		return true
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Unhandled book error")
	response.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
	return true
}
