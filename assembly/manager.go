package assembly

import (
	"sync"

	"github.com/google/uuid"

	"scriptweaver/catalog"
)

// Manager owns the ordered blueprint list. Positions are kept dense: after
// any Add, Remove, or Reorder they are exactly 0..n-1 in slice order.
type Manager struct {
	mu         sync.RWMutex
	blueprints []*Blueprint
}

func NewManager() *Manager {
	return &Manager{blueprints: []*Blueprint{}}
}

// Add appends a blueprint for snippet at the end of the list with an empty
// override mapping. It always succeeds.
func (m *Manager) Add(snippet catalog.Snippet) Blueprint {
	m.mu.Lock()
	defer m.mu.Unlock()

	params := make([]string, len(snippet.Params))
	copy(params, snippet.Params)

	b := &Blueprint{
		ID:          uuid.New().String(),
		SnippetID:   snippet.ID,
		Name:        snippet.Name,
		Description: snippet.Description,
		Code:        snippet.Code,
		Params:      params,
		Position:    len(m.blueprints),
		Overrides:   map[string]string{},
	}
	m.blueprints = append(m.blueprints, b)
	return *b
}

// Remove deletes the blueprint with the given ID and renumbers the
// survivors so positions stay dense. Removing an unknown ID is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, b := range m.blueprints {
		if b.ID == id {
			m.blueprints = append(m.blueprints[:i], m.blueprints[i+1:]...)
			m.renumber()
			return
		}
	}
}

// Reorder moves the element at from to index to, shifting everything in
// between, then rewrites every position to its new slice index. from == to
// is a no-op.
func (m *Manager) Reorder(from, to int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.blueprints)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrBadIndex
	}
	if from == to {
		return nil
	}

	moved := m.blueprints[from]
	m.blueprints = append(m.blueprints[:from], m.blueprints[from+1:]...)
	m.blueprints = append(m.blueprints[:to], append([]*Blueprint{moved}, m.blueprints[to:]...)...)
	m.renumber()
	return nil
}

// SetOverrides replaces the entire override mapping for the blueprint.
// Partial updates must be merged by the caller before calling.
func (m *Manager) SetOverrides(id string, overrides map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.blueprints {
		if b.ID == id {
			if overrides == nil {
				overrides = map[string]string{}
			}
			b.Overrides = overrides
			return nil
		}
	}
	return ErrNotFound
}

// Get returns a copy of the blueprint with the given ID.
func (m *Manager) Get(id string) (Blueprint, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.blueprints {
		if b.ID == id {
			return copyBlueprint(b), true
		}
	}
	return Blueprint{}, false
}

// List returns a copy of the blueprints in position order.
func (m *Manager) List() []Blueprint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Blueprint, len(m.blueprints))
	for i, b := range m.blueprints {
		out[i] = copyBlueprint(b)
	}
	return out
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blueprints)
}

// renumber rewrites positions to slice order. Caller must hold m.mu.
func (m *Manager) renumber() {
	for i, b := range m.blueprints {
		b.Position = i
	}
}

func copyBlueprint(b *Blueprint) Blueprint {
	cp := *b
	cp.Params = make([]string, len(b.Params))
	copy(cp.Params, b.Params)
	cp.Overrides = make(map[string]string, len(b.Overrides))
	for k, v := range b.Overrides {
		cp.Overrides[k] = v
	}
	return cp
}
