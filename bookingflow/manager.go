package bookingflow

import "sync"

// Manager owns at most one live flow per user. Each flow is
// single-writer, the map just guards concurrent requests from
// different users.
type Manager struct {
	mu    sync.RWMutex
	flows map[string]*Flow
}

func NewManager() *Manager {
	return &Manager{flows: make(map[string]*Flow)}
}

// Start replaces any flow the user already had; an abandoned draft is
// simply discarded.
func (m *Manager) Start(userID string, f *Flow) {
	m.mu.Lock()
	m.flows[userID] = f
	m.mu.Unlock()
}

func (m *Manager) Get(userID string) (*Flow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flows[userID]
	if !ok {
		return nil, ErrNoActiveFlow
	}
	return f, nil
}

// Cancel discards the in-progress draft with no persisted side effect.
func (m *Manager) Cancel(userID string) {
	m.mu.Lock()
	delete(m.flows, userID)
	m.mu.Unlock()
}

// Finish removes a flow after its draft was committed.
func (m *Manager) Finish(userID string) {
	m.Cancel(userID)
}
