package menu

import "errors"

var (
	ErrCatalogUnavailable = errors.New("menu catalog unavailable")
)
