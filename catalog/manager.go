package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Manager holds the snippet catalog: the built-in seed list plus any
// user-added custom snippets. Built-ins cannot be removed; custom snippets
// are append-only for the lifetime of the process.
type Manager struct {
	mu       sync.RWMutex
	snippets []Snippet
}

// NewManager builds a catalog from the built-in seeds. If seedFile is
// non-empty and the file exists, snippets from it are appended; a missing
// file is not an error.
func NewManager(seedFile string) (*Manager, error) {
	m := &Manager{snippets: builtinSnippets()}
	if seedFile == "" {
		return m, nil
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return nil, err
	}

	var extra []Snippet
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil, err
	}
	for i := range extra {
		if extra[i].ID == "" {
			extra[i].ID = uuid.New().String()
		}
		if !validCategory(extra[i].Category) {
			extra[i].Category = CategoryCustom
		}
		if extra[i].Params == nil {
			extra[i].Params = []string{}
		}
	}
	m.snippets = append(m.snippets, extra...)
	return m, nil
}

// List returns a copy of the full catalog in insertion order.
func (m *Manager) List() []Snippet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Snippet, len(m.snippets))
	copy(out, m.snippets)
	return out
}

// Get looks a snippet up by ID.
func (m *Manager) Get(id string) (Snippet, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.snippets {
		if s.ID == id {
			return s, true
		}
	}
	return Snippet{}, false
}

// Filter returns snippets whose name or description contains query
// (case-insensitive) and whose category equals category. An empty query
// matches everything, as does category "All".
func (m *Manager) Filter(query, category string) []Snippet {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := []Snippet{}
	for _, s := range m.snippets {
		if category != "" && category != CategoryAll && s.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// AddCustom validates and appends a user-authored snippet. paramsCSV is a
// comma-separated parameter list; entries are trimmed and empties dropped,
// order preserved. Returns ErrInvalidSnippet when the trimmed name or code
// is empty; the catalog is unchanged in that case.
func (m *Manager) AddCustom(name, description, category, code, paramsCSV string) (Snippet, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(code) == "" {
		return Snippet{}, ErrInvalidSnippet
	}
	if !validCategory(category) {
		category = CategoryCustom
	}

	params := []string{}
	for _, p := range strings.Split(paramsCSV, ",") {
		if p = strings.TrimSpace(p); p != "" {
			params = append(params, p)
		}
	}

	s := Snippet{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Category:    category,
		Code:        code,
		Params:      params,
		Custom:      true,
	}

	m.mu.Lock()
	m.snippets = append(m.snippets, s)
	m.mu.Unlock()
	return s, nil
}

func validCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
