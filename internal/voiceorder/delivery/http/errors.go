package http

import (
	"errors"
	"net/http"

	"voice-ordering/internal/menu"
	"voice-ordering/internal/voiceorder"
	pkgErrors "voice-ordering/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voiceorder.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, voiceorder.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "user_message is empty")
	case errors.Is(err, voiceorder.ErrProvider):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "assistant is unavailable, please retry")
	case errors.Is(err, menu.ErrCatalogUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "menu catalog is unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
