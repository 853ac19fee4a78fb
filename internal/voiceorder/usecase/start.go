package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-ordering/internal/voiceorder"
	"voice-ordering/internal/voiceorder/prompt"
)

// Start opens a session seeded with the system prompt and a greeting.
func (uc *implUseCase) Start(ctx context.Context, input voiceorder.StartInput) (voiceorder.StartOutput, error) {
	name := uc.customerName(input.CustomerName)

	systemPrompt, err := uc.SystemPrompt(ctx, name)
	if err != nil {
		return voiceorder.StartOutput{}, err
	}

	id, err := uc.registry.Create()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Start Create: %v", err)
		return voiceorder.StartOutput{}, err
	}

	greeting := fmt.Sprintf(uc.opts.GreetingTemplate, name)
	if err := uc.registry.Append(id, voiceorder.RoleSystem, systemPrompt); err != nil {
		return voiceorder.StartOutput{}, err
	}
	if err := uc.registry.Append(id, voiceorder.RoleAssistant, greeting); err != nil {
		return voiceorder.StartOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Start: session %s started for %s", id, name)
	return voiceorder.StartOutput{SessionID: id, AssistantText: greeting}, nil
}

// SystemPrompt renders the prompt for the current catalog.
func (uc *implUseCase) SystemPrompt(ctx context.Context, customerName string) (string, error) {
	snap, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SystemPrompt Snapshot: %v", err)
		return "", err
	}

	return prompt.Build(prompt.Input{
		CustomerName: uc.customerName(customerName),
		Snapshot:     snap,
		Today:        uc.dates.Today(uc.now()),
	}), nil
}

func (uc *implUseCase) customerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return uc.opts.FallbackCustomerName
	}
	return name
}
