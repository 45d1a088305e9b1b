// Package globals holds the session-wide configuration table: named values
// usable as %key% placeholders across every blueprint.
package globals

import (
	"errors"
	"fmt"
	"sync"
)

// Variable is one configuration slot. Key is generated and unique for the
// lifetime of the process; Name, Label, and Value are free-form.
type Variable struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
}

var ErrNotFound = errors.New("variable not found")
var ErrUnknownField = errors.New("unknown variable field")

type Manager struct {
	mu   sync.RWMutex
	vars []*Variable
	next int // counter never rewinds, so deleted keys are never reissued
}

func NewManager() *Manager {
	return &Manager{vars: []*Variable{}, next: 1}
}

// Add appends a new variable with a generated key and defaulted name and
// label.
func (m *Manager) Add() Variable {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.next
	m.next++
	v := &Variable{
		Key:   fmt.Sprintf("var%d", n),
		Name:  fmt.Sprintf("variable%d", n),
		Label: fmt.Sprintf("Variable %d", n),
	}
	m.vars = append(m.vars, v)
	return *v
}

// UpdateField edits one field of the variable in place. field is one of
// "name", "label", or "value".
func (m *Manager) UpdateField(key, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.vars {
		if v.Key != key {
			continue
		}
		switch field {
		case "name":
			v.Name = value
		case "label":
			v.Label = value
		case "value":
			v.Value = value
		default:
			return ErrUnknownField
		}
		return nil
	}
	return ErrNotFound
}

func (m *Manager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, v := range m.vars {
		if v.Key == key {
			m.vars = append(m.vars[:i], m.vars[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// List returns a copy of the variables in creation order.
func (m *Manager) List() []Variable {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Variable, len(m.vars))
	for i, v := range m.vars {
		out[i] = *v
	}
	return out
}

// Map returns a key→Variable snapshot for the generator.
func (m *Manager) Map() map[string]Variable {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]Variable, len(m.vars))
	for _, v := range m.vars {
		out[v.Key] = *v
	}
	return out
}
