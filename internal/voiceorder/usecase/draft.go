package usecase

import (
	"context"

	"voice-ordering/internal/voiceorder"
)

// GetDraft returns the last completed draft of a session. Before completion
// the draft is empty.
func (uc *implUseCase) GetDraft(ctx context.Context, sessionID string) (voiceorder.OrderDraft, error) {
	draft, err := uc.registry.Draft(sessionID)
	if err != nil {
		return voiceorder.OrderDraft{}, err
	}
	return draft, nil
}

// End drops a session. Unknown ids are ignored.
func (uc *implUseCase) End(ctx context.Context, sessionID string) error {
	uc.registry.End(sessionID)
	uc.l.Infof(ctx, "uc.End: session %s ended", sessionID)
	return nil
}
