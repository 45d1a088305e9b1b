package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"scriptweaver/catalog"
)

func (h *handler) listSnippets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, h.catalog.Filter(q, category))
}

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories)
}

func (h *handler) addCustomSnippet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Code        string `json:"code"`
		Params      string `json:"params"` // comma-separated
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.catalog.AddCustom(req.Name, req.Description, req.Category, req.Code, req.Params)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidSnippet) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to add snippet", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, s)
}
