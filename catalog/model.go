package catalog

import "errors"

// Snippet is a reusable JavaScript code template. Placeholders of the form
// %name% in Code are resolved at generation time from per-blueprint overrides
// or global configuration values.
type Snippet struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Code        string   `json:"code"`
	Params      []string `json:"params"`
	Custom      bool     `json:"custom"`
}

// Fixed category enumeration. Anything outside it buckets to CategoryCustom.
const (
	CategoryDOM       = "DOM"
	CategoryEvents    = "Events"
	CategoryNetwork   = "Network"
	CategoryStorage   = "Storage"
	CategoryUtilities = "Utilities"
	CategoryCustom    = "Custom"

	// CategoryAll is a filter value, not a snippet category.
	CategoryAll = "All"
)

// Categories lists the categories a snippet may carry, in display order.
var Categories = []string{
	CategoryDOM,
	CategoryEvents,
	CategoryNetwork,
	CategoryStorage,
	CategoryUtilities,
	CategoryCustom,
}

var ErrInvalidSnippet = errors.New("snippet name and code must not be empty")
