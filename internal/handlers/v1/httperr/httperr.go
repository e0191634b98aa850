// Package httperr maps service-layer errors onto HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/apperr"
)

// FromService converts a service error into a huma status error. Taxonomy
// errors keep their caller-facing message; anything else becomes a 500.
func FromService(err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return huma.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		return huma.NewError(http.StatusConflict, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "internal error", err)
	}
}

// ParseUUID parses a path or body UUID field, answering 400 on failure.
func ParseUUID(name, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return id, nil
}

// ParseUserID parses the X-User-ID header value.
func ParseUserID(value string) (uuid.UUID, error) {
	return ParseUUID("X-User-ID header", value)
}
