package http

import (
	"voice-ordering/internal/menu"
	"voice-ordering/pkg/log"
)

type handler struct {
	l  log.Logger
	uc menu.UseCase
}

// New creates a new HTTP handler for the menu domain.
func New(l log.Logger, uc menu.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
