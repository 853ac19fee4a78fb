package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"voice-ordering/internal/voiceorder"
)

const maxIDAttempts = 3

var ErrIDExhausted = errors.New("could not generate a unique session id")

// Registry is an in-memory, concurrency-safe store of conversations and their
// order drafts. State is lost when the process exits.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	newID    func() (string, error)
}

type entry struct {
	// turn serializes whole conversation turns on one session.
	turn sync.Mutex

	mu      sync.Mutex
	history []voiceorder.Turn
	draft   voiceorder.OrderDraft
	ended   bool
}

func New() *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		newID: func() (string, error) {
			id, err := uuid.NewRandom()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
	}
}

// Create registers a session with an empty history and an empty draft.
func (r *Registry) Create() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < maxIDAttempts; i++ {
		id, err := r.newID()
		if err != nil {
			return "", err
		}
		if _, taken := r.sessions[id]; taken {
			continue
		}
		r.sessions[id] = &entry{draft: voiceorder.NewOrderDraft()}
		return id, nil
	}
	return "", ErrIDExhausted
}

func (r *Registry) get(id string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, voiceorder.ErrSessionNotFound
	}
	return e, nil
}

// Lock serializes turns on one session. The returned func releases the lock.
// Lock fails if the session ended while the caller was waiting.
func (r *Registry) Lock(id string) (func(), error) {
	e, err := r.get(id)
	if err != nil {
		return nil, err
	}

	e.turn.Lock()
	e.mu.Lock()
	ended := e.ended
	e.mu.Unlock()
	if ended {
		e.turn.Unlock()
		return nil, voiceorder.ErrSessionNotFound
	}
	return e.turn.Unlock, nil
}

// Append adds a turn at the end of the session's history.
func (r *Registry) Append(id string, role voiceorder.Role, text string) error {
	e, err := r.get(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ended {
		return voiceorder.ErrSessionNotFound
	}
	e.history = append(e.history, voiceorder.Turn{Role: role, Text: text})
	return nil
}

// History returns a copy of the session's turns in append order.
func (r *Registry) History(id string) ([]voiceorder.Turn, error) {
	e, err := r.get(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ended {
		return nil, voiceorder.ErrSessionNotFound
	}
	out := make([]voiceorder.Turn, len(e.history))
	copy(out, e.history)
	return out, nil
}

// Draft returns a copy of the session's current order draft.
func (r *Registry) Draft(id string) (voiceorder.OrderDraft, error) {
	e, err := r.get(id)
	if err != nil {
		return voiceorder.OrderDraft{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ended {
		return voiceorder.OrderDraft{}, voiceorder.ErrSessionNotFound
	}
	return e.draft.Clone(), nil
}

// ReplaceDraft atomically swaps the session's draft.
func (r *Registry) ReplaceDraft(id string, draft voiceorder.OrderDraft) error {
	e, err := r.get(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ended {
		return voiceorder.ErrSessionNotFound
	}
	e.draft = draft.Clone()
	return nil
}

// End removes the session. Ending an unknown session is a no-op.
func (r *Registry) End(id string) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return
	}

	e.mu.Lock()
	e.ended = true
	e.history = nil
	e.draft = voiceorder.OrderDraft{}
	e.mu.Unlock()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
