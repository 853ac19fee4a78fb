package http

import (
	"voice-ordering/internal/voiceorder"
	"voice-ordering/pkg/log"
)

type handler struct {
	l  log.Logger
	uc voiceorder.UseCase
}

// New creates a new HTTP handler for the voice order domain.
func New(l log.Logger, uc voiceorder.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
