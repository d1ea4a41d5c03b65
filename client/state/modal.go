package state

import "sync"

// Modal is a single-slot modal machine: opening a modal replaces whatever
// was open, closing clears the slot.
type Modal struct {
	notifier

	mu      sync.RWMutex
	kind    string
	payload any
}

func NewModal() *Modal {
	return &Modal{}
}

// Open shows the given modal, replacing any open one.
func (m *Modal) Open(kind string, payload any) {
	m.mu.Lock()
	m.kind = kind
	m.payload = payload
	m.mu.Unlock()

	m.notify()
}

func (m *Modal) Close() {
	m.mu.Lock()
	m.kind = ""
	m.payload = nil
	m.mu.Unlock()

	m.notify()
}

// Current returns the open modal kind and payload. Open is false when no
// modal is showing.
func (m *Modal) Current() (kind string, payload any, open bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.kind, m.payload, m.kind != ""
}

func (m *Modal) IsOpen(kind string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.kind == kind
}
