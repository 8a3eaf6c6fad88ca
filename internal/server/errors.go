package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/db"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStoreUnavailable indicates a request needs report storage that is not configured.
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "report storage is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		storeErr       *ErrStoreUnavailable
		unsupportedErr *ingestion.UnsupportedFormatError
		extractionErr  *ingestion.ExtractionError
		maxBytesErr    *http.MaxBytesError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ingestion.ErrEmptyDocument), errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &storeErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
