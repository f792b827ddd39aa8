package assistant

import (
	"sync"
	"wandervoice/models"
)

// Session is one append-only chat history. The mutex serializes whole turns:
// a second message arriving while one is in flight queues behind it, so
// history order always matches arrival order.
type Session struct {
	ID string

	mu      sync.Mutex
	history []models.ChatMessage
}

func (s *Session) append(msg models.ChatMessage) {
	s.history = append(s.history, msg)
}

// History returns a snapshot safe to hand out.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func (st *SessionStore) Get(sessionID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[sessionID]; ok {
		return s
	}
	s := &Session{ID: sessionID}
	st.sessions[sessionID] = s
	return s
}
