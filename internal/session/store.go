package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/splitcheck/splitcheck/internal/receipt"
)

// Store keeps live splitting sessions in memory. Selections exist only
// for the lifetime of a session and are discarded with it; nothing here
// touches the database.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create starts a new session over the given receipt.
func (st *Store) Create(rcpt *receipt.Receipt) *Session {
	s := newSession(uuid.New().String(), rcpt)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get returns the session with the given ID.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session, discarding all selections.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
