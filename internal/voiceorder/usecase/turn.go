package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-ordering/internal/voiceorder"
	"voice-ordering/internal/voiceorder/extract"
)

// Turn runs one exchange: user text in, assistant reply out, draft updated
// when the reply completes the order.
func (uc *implUseCase) Turn(ctx context.Context, input voiceorder.TurnInput) (voiceorder.TurnOutput, error) {
	unlock, err := uc.registry.Lock(input.SessionID)
	if errors.Is(err, voiceorder.ErrSessionNotFound) {
		return uc.recoverSession(ctx, input)
	}
	if err != nil {
		return voiceorder.TurnOutput{}, err
	}
	defer unlock()

	if strings.TrimSpace(input.UserText) == "" {
		return voiceorder.TurnOutput{}, voiceorder.ErrEmptyMessage
	}

	id := input.SessionID
	if err := uc.registry.Append(id, voiceorder.RoleUser, input.UserText); err != nil {
		return voiceorder.TurnOutput{}, err
	}

	history, err := uc.registry.History(id)
	if err != nil {
		return voiceorder.TurnOutput{}, err
	}

	reply, err := uc.completer.Complete(ctx, history)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Turn Complete %s: %v", id, err)
		return voiceorder.TurnOutput{}, fmt.Errorf("%w: %v", voiceorder.ErrProvider, err)
	}

	if err := uc.registry.Append(id, voiceorder.RoleAssistant, reply); err != nil {
		return voiceorder.TurnOutput{}, err
	}
	history = append(history, voiceorder.Turn{Role: voiceorder.RoleAssistant, Text: reply})

	res := uc.extractor.Extract(ctx, history)
	complete := extract.IsComplete(reply, res.Draft)
	if complete && uc.opts.EnforceFutureDeliveryDate {
		complete = uc.deliveryDateAccepted(ctx, res.Draft.DeliveryDate)
	}

	out := voiceorder.TurnOutput{
		SessionID:     id,
		AssistantText: reply,
		DisplayText:   extract.StripBlock(reply),
	}

	if !complete {
		if res.Block.Status != extract.StatusAbsent {
			uc.l.Infof(ctx, "uc.Turn: session %s block %s, missing %v", id, res.Block.Status, extract.Missing(reply, res.Draft))
		}
		return out, nil
	}

	if err := uc.registry.ReplaceDraft(id, *res.Draft); err != nil {
		return voiceorder.TurnOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Turn: session %s order complete (dinner=%s style=%s date=%s)",
		id, res.Draft.DinnerID, res.Draft.StyleID, res.Draft.DeliveryDate)

	draft := res.Draft.Clone()
	out.IsOrderComplete = true
	out.Draft = &draft
	return out, nil
}

// recoverSession handles a turn against a session this process does not know.
func (uc *implUseCase) recoverSession(ctx context.Context, input voiceorder.TurnInput) (voiceorder.TurnOutput, error) {
	if !uc.opts.RecoverUnknownSession {
		return voiceorder.TurnOutput{}, voiceorder.ErrSessionNotFound
	}

	uc.l.Warnf(ctx, "uc.Turn: unknown session %q, starting a new one", input.SessionID)
	started, err := uc.Start(ctx, voiceorder.StartInput{CustomerName: input.CustomerName})
	if err != nil {
		return voiceorder.TurnOutput{}, err
	}

	return voiceorder.TurnOutput{
		SessionID:     started.SessionID,
		AssistantText: started.AssistantText,
		DisplayText:   started.AssistantText,
		Recovered:     true,
	}, nil
}

func (uc *implUseCase) deliveryDateAccepted(ctx context.Context, date string) bool {
	ok, err := uc.dates.IsAfterToday(date, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "uc.Turn: delivery date %q rejected: %v", date, err)
		return false
	}
	if !ok {
		uc.l.Warnf(ctx, "uc.Turn: delivery date %q is not after today", date)
	}
	return ok
}
