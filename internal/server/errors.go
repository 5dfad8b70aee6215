package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/schemas"
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
	var validationErr *ErrValidation
	var schemaErr *schemas.ValidationError
	var rasterErr *export.RasterizeError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaErr), errors.Is(err, editor.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrUnknownMode):
		return http.StatusNotFound
	case errors.Is(err, export.ErrNoPreviewSurface):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &rasterErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
