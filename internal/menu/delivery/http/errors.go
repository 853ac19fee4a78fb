package http

import (
	"errors"
	"net/http"

	"voice-ordering/internal/menu"
	pkgErrors "voice-ordering/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, menu.ErrCatalogUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "menu catalog is unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
