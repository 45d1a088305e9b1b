package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scriptweaver/assembly"
)

func (h *handler) listBlueprints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.assembly.List())
}

func (h *handler) addBlueprint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SnippetID string `json:"snippetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SnippetID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, ok := h.catalog.Get(req.SnippetID)
	if !ok {
		http.Error(w, "snippet not found", http.StatusNotFound)
		return
	}

	b := h.assembly.Add(s)
	h.broadcastPreview()
	writeJSON(w, http.StatusCreated, b)
}

func (h *handler) removeBlueprint(w http.ResponseWriter, r *http.Request) {
	// Removing an unknown blueprint is a documented no-op.
	h.assembly.Remove(chi.URLParam(r, "id"))
	h.broadcastPreview()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) reorderBlueprints(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.assembly.Reorder(req.From, req.To); err != nil {
		if errors.Is(err, assembly.ErrBadIndex) {
			http.Error(w, "reorder index out of range", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to reorder", http.StatusInternalServerError)
		return
	}

	h.broadcastPreview()
	writeJSON(w, http.StatusOK, h.assembly.List())
}

func (h *handler) setBlueprintParams(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var overrides map[string]string
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.assembly.SetOverrides(id, overrides); err != nil {
		if errors.Is(err, assembly.ErrNotFound) {
			http.Error(w, "blueprint not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to set parameters", http.StatusInternalServerError)
		return
	}

	h.broadcastPreview()
	b, _ := h.assembly.Get(id)
	writeJSON(w, http.StatusOK, b)
}
