package usecase

import (
	"context"
	"strings"

	"voice-ordering/internal/voiceorder"
	"voice-ordering/pkg/llmprovider"
)

const (
	DefaultTemperature = 0.2
	DefaultMaxTokens   = 1000
)

// Generator is satisfied by *llmprovider.Manager and by single providers.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type llmCompleter struct {
	gen         Generator
	temperature float64
	maxTokens   int
}

// NewLLMCompleter adapts a Generator to voiceorder.Completer. A leading
// system turn becomes the request's system instruction.
func NewLLMCompleter(gen Generator, temperature float64, maxTokens int) voiceorder.Completer {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &llmCompleter{gen: gen, temperature: temperature, maxTokens: maxTokens}
}

func (c *llmCompleter) Complete(ctx context.Context, turns []voiceorder.Turn) (string, error) {
	req := &llmprovider.Request{
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages:    make([]llmprovider.Message, 0, len(turns)),
	}

	for i, t := range turns {
		switch t.Role {
		case voiceorder.RoleSystem:
			if i == 0 {
				msg := llmprovider.TextMessage(llmprovider.RoleSystem, t.Text)
				req.SystemInstruction = &msg
				continue
			}
			// Later system turns are passed along as user context.
			req.Messages = append(req.Messages, llmprovider.TextMessage(llmprovider.RoleUser, t.Text))
		case voiceorder.RoleAssistant:
			req.Messages = append(req.Messages, llmprovider.TextMessage(llmprovider.RoleAssistant, t.Text))
		default:
			req.Messages = append(req.Messages, llmprovider.TextMessage(llmprovider.RoleUser, t.Text))
		}
	}

	resp, err := c.gen.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", llmprovider.ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Content.Text())
	if text == "" {
		return "", llmprovider.ErrEmptyResponse
	}
	return text, nil
}
