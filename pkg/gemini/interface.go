package gemini

import (
	"context"
	"errors"
)

// ErrPromptBlocked is returned when Gemini refuses the prompt outright, for
// example when a safety filter trips on the conversation so far.
var ErrPromptBlocked = errors.New("gemini: prompt blocked")

// IGemini is a generateContent client. Implementations are safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
