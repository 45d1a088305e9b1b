package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scriptweaver/globals"
)

func (h *handler) listGlobals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.globals.List())
}

func (h *handler) addGlobal(w http.ResponseWriter, r *http.Request) {
	v := h.globals.Add()
	h.broadcastPreview()
	writeJSON(w, http.StatusCreated, v)
}

func (h *handler) updateGlobal(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.globals.UpdateField(key, req.Field, req.Value); err != nil {
		switch {
		case errors.Is(err, globals.ErrNotFound):
			http.Error(w, "variable not found", http.StatusNotFound)
		case errors.Is(err, globals.ErrUnknownField):
			http.Error(w, "field must be one of name, label, value", http.StatusBadRequest)
		default:
			http.Error(w, "failed to update variable", http.StatusInternalServerError)
		}
		return
	}

	h.broadcastPreview()
	writeJSON(w, http.StatusOK, h.globals.List())
}

func (h *handler) removeGlobal(w http.ResponseWriter, r *http.Request) {
	if err := h.globals.Remove(chi.URLParam(r, "key")); err != nil {
		http.Error(w, "variable not found", http.StatusNotFound)
		return
	}
	h.broadcastPreview()
	w.WriteHeader(http.StatusNoContent)
}
