package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/ats-resume/internal/db"
	"github.com/jonathan/ats-resume/internal/grouping"
	"github.com/jonathan/ats-resume/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		readErr       *ingestion.InputReadError
		missingErr    *grouping.MissingRequiredFieldError
		maxBytesErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validationErr), errors.As(err, &readErr):
		return http.StatusBadRequest
	case errors.As(err, &missingErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, db.ErrResumeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
