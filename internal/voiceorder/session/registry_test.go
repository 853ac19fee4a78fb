package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-ordering/internal/voiceorder"
)

func TestCreate(t *testing.T) {
	r := New()

	a, err := r.Create()
	require.NoError(t, err)
	b, err := r.Create()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())

	draft, err := r.Draft(a)
	require.NoError(t, err)
	assert.NotNil(t, draft.Customizations)
	assert.Empty(t, draft.Customizations)

	history, err := r.History(a)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCreateIDExhausted(t *testing.T) {
	r := New()
	r.newID = func() (string, error) { return "same", nil }

	_, err := r.Create()
	require.NoError(t, err)
	_, err = r.Create()
	assert.ErrorIs(t, err, ErrIDExhausted)
}

func TestAppendPreservesOrder(t *testing.T) {
	r := New()
	id, _ := r.Create()

	require.NoError(t, r.Append(id, voiceorder.RoleSystem, "prompt"))
	require.NoError(t, r.Append(id, voiceorder.RoleAssistant, "hello"))
	require.NoError(t, r.Append(id, voiceorder.RoleUser, "french dinner please"))

	history, err := r.History(id)
	require.NoError(t, err)
	assert.Equal(t, []voiceorder.Turn{
		{Role: voiceorder.RoleSystem, Text: "prompt"},
		{Role: voiceorder.RoleAssistant, Text: "hello"},
		{Role: voiceorder.RoleUser, Text: "french dinner please"},
	}, history)

	// Mutating the copy must not leak into the registry.
	history[0].Text = "changed"
	again, _ := r.History(id)
	assert.Equal(t, "prompt", again[0].Text)
}

func TestUnknownSession(t *testing.T) {
	r := New()

	assert.ErrorIs(t, r.Append("nope", voiceorder.RoleUser, "hi"), voiceorder.ErrSessionNotFound)
	_, err := r.History("nope")
	assert.ErrorIs(t, err, voiceorder.ErrSessionNotFound)
	_, err = r.Draft("nope")
	assert.ErrorIs(t, err, voiceorder.ErrSessionNotFound)
	assert.ErrorIs(t, r.ReplaceDraft("nope", voiceorder.NewOrderDraft()), voiceorder.ErrSessionNotFound)
	_, err = r.Lock("nope")
	assert.ErrorIs(t, err, voiceorder.ErrSessionNotFound)
}

func TestReplaceDraftIsolation(t *testing.T) {
	r := New()
	id, _ := r.Create()

	draft := voiceorder.OrderDraft{DinnerID: "1", Customizations: map[string]int{"10": 2}}
	require.NoError(t, r.ReplaceDraft(id, draft))
	draft.Customizations["10"] = 99

	got, err := r.Draft(id)
	require.NoError(t, err)
	assert.Equal(t, "1", got.DinnerID)
	assert.Equal(t, 2, got.Customizations["10"])
}

func TestEndIdempotent(t *testing.T) {
	r := New()
	id, _ := r.Create()

	r.End(id)
	r.End(id)
	r.End("never-created")

	_, err := r.Draft(id)
	assert.ErrorIs(t, err, voiceorder.ErrSessionNotFound)
	assert.Equal(t, 0, r.Len())
}

func TestLockFailsAfterEnd(t *testing.T) {
	r := New()
	id, _ := r.Create()

	unlock, err := r.Lock(id)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		// Waits for the first turn; by then the session is gone.
		_, err := r.Lock(id)
		done <- err
	}()

	r.End(id)
	unlock()

	assert.ErrorIs(t, <-done, voiceorder.ErrSessionNotFound)
}

func TestConcurrentAppend(t *testing.T) {
	r := New()
	id, _ := r.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			unlock, err := r.Lock(id)
			if err != nil {
				t.Errorf("lock: %v", err)
				return
			}
			defer unlock()
			_ = r.Append(id, voiceorder.RoleUser, fmt.Sprintf("u%d", i))
			_ = r.Append(id, voiceorder.RoleAssistant, fmt.Sprintf("a%d", i))
		}(i)
	}
	wg.Wait()

	history, err := r.History(id)
	require.NoError(t, err)
	require.Len(t, history, 100)

	// Turns are serialized, so every user turn is followed by its own reply.
	for i := 0; i < len(history); i += 2 {
		assert.Equal(t, voiceorder.RoleUser, history[i].Role)
		assert.Equal(t, "a"+history[i].Text[1:], history[i+1].Text)
	}
}
