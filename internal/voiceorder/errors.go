package voiceorder

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrProvider        = errors.New("completion provider failed")
	ErrEmptyMessage    = errors.New("user message is empty")
)
