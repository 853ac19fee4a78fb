package voiceorder

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Start(ctx context.Context, input StartInput) (StartOutput, error)
	Turn(ctx context.Context, input TurnInput) (TurnOutput, error)
	GetDraft(ctx context.Context, sessionID string) (OrderDraft, error)
	End(ctx context.Context, sessionID string) error
}

// Completer produces the next assistant reply for an ordered conversation.
type Completer interface {
	Complete(ctx context.Context, turns []Turn) (string, error)
}
