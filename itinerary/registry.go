package itinerary

import "sync"

// Registry maps session ids to their working stores. Stores live for the
// session only; persistence is an explicit save.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.stores[sessionID]; ok {
		return st
	}
	st := NewStore()
	r.stores[sessionID] = st
	return st
}

func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sessionID)
}
