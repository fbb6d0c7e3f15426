package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session ID has no stored state.
var ErrNotFound = errors.New("session not found")

// Store keeps session state in memory for the lifetime of the process.
// Sessions are never deleted on report generation, so a failed render can be
// retried without re-answering.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]State
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]State)}
}

// Create starts a new session and stores it.
func (st *Store) Create(identity Identity, now time.Time) State {
	s := New(uuid.New(), identity, now)
	st.Put(s)
	return s
}

// Get returns the state stored under id.
func (st *Store) Get(id uuid.UUID) (State, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return clone(s), nil
}

// Put stores a state under its ID, replacing any previous state.
func (st *Store) Put(s State) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = clone(s)
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
