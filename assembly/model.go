package assembly

import "errors"

// Blueprint is one placement of a catalog snippet in the assembly. The
// snippet fields are snapshotted at add time so the generator never reaches
// back into the catalog; several blueprints may reference the same snippet.
type Blueprint struct {
	ID          string            `json:"id"`
	SnippetID   string            `json:"snippetId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Code        string            `json:"code"`
	Params      []string          `json:"params"`
	Position    int               `json:"position"`
	Overrides   map[string]string `json:"overrides"`
}

var ErrNotFound = errors.New("blueprint not found")
var ErrBadIndex = errors.New("reorder index out of range")
