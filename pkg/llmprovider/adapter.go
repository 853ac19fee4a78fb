package llmprovider

import (
	"context"

	"voice-ordering/pkg/gemini"
	"voice-ordering/pkg/openrouter"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		sys := toGeminiContent(*req.SystemInstruction)
		geminiReq.SystemInstruction = &sys
	}
	for _, msg := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, toGeminiContent(msg))
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// toGeminiContent maps the assistant role onto Gemini's "model" role.
func toGeminiContent(msg Message) gemini.Content {
	role := gemini.RoleUser
	if msg.Role == RoleAssistant {
		role = gemini.RoleModel
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return gemini.Content{Role: role, Parts: parts}
}

// OpenRouterAdapter adapts pkg/openrouter to llmprovider.Provider interface.
// The same client serves every OpenAI-compatible endpoint, so the adapter
// carries the configured provider name.
type OpenRouterAdapter struct {
	name   string
	client openrouter.IOpenRouter
}

// NewOpenRouterAdapter creates a new OpenAI-compatible adapter
func NewOpenRouterAdapter(name string, client openrouter.IOpenRouter) *OpenRouterAdapter {
	if name == "" {
		name = "openrouter"
	}
	return &OpenRouterAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	orReq := &openrouter.Request{
		Messages:    make([]openrouter.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		orReq.Messages = append(orReq.Messages, openrouter.Message{
			Role:    openrouter.RoleSystem,
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		orReq.Messages = append(orReq.Messages, openrouter.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, orReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      TextMessage(RoleAssistant, resp.Message.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenRouterAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenRouterAdapter) Model() string {
	return a.client.Model()
}
