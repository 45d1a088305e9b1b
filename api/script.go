package api

import (
	"errors"
	"fmt"
	"net/http"

	"scriptweaver/generator"
)

func (h *handler) generateScript(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Generate()
	if err != nil {
		if errors.Is(err, generator.ErrEmptyAssembly) {
			// Rejection, not failure: the previous artifact stays intact.
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "failed to generate script", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) getScript(w http.ResponseWriter, r *http.Request) {
	res, ok := h.svc.Last()
	if !ok {
		http.Error(w, "no script generated yet", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) downloadScript(w http.ResponseWriter, r *http.Request) {
	res, ok := h.svc.Last()
	if !ok {
		http.Error(w, "no script generated yet", http.StatusNotFound)
		return
	}

	name := fmt.Sprintf("weave-%s.js", res.GeneratedAt.Format("20060102-150405"))
	w.Header().Set("Content-Type", "text/javascript")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(res.Script))
}
