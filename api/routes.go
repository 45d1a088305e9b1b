package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"scriptweaver/assembly"
	"scriptweaver/catalog"
	"scriptweaver/generator"
	"scriptweaver/globals"
)

func RegisterRoutes(cm *catalog.Manager, am *assembly.Manager, gm *globals.Manager, svc *generator.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{
		catalog:  cm,
		assembly: am,
		globals:  gm,
		svc:      svc,
		hub:      newPreviewHub(),
	}

	// Snippet catalog
	r.Get("/api/snippets", h.listSnippets)
	r.Post("/api/snippets", h.addCustomSnippet)
	r.Get("/api/categories", h.listCategories)

	// Assembly (blueprint list)
	r.Get("/api/assembly", h.listBlueprints)
	r.Post("/api/assembly", h.addBlueprint)
	r.Post("/api/assembly/reorder", h.reorderBlueprints)
	r.Delete("/api/assembly/{id}", h.removeBlueprint)
	r.Put("/api/assembly/{id}/params", h.setBlueprintParams)

	// Global configuration table
	r.Get("/api/globals", h.listGlobals)
	r.Post("/api/globals", h.addGlobal)
	r.Patch("/api/globals/{key}", h.updateGlobal)
	r.Delete("/api/globals/{key}", h.removeGlobal)

	// Script artifact
	r.Post("/api/script/generate", h.generateScript)
	r.Get("/api/script", h.getScript)
	r.Get("/api/script/download", h.downloadScript)

	// Live preview
	r.Get("/api/ws", h.handleWS)

	return r
}

type handler struct {
	catalog  *catalog.Manager
	assembly *assembly.Manager
	globals  *globals.Manager
	svc      *generator.Service
	hub      *previewHub
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
