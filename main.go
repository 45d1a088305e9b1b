package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"scriptweaver/api"
	"scriptweaver/assembly"
	"scriptweaver/catalog"
	"scriptweaver/generator"
	"scriptweaver/globals"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Optional extra snippets merged into the built-in catalog at startup.
	seedFile := os.Getenv("SNIPPET_FILE")
	cm, err := catalog.NewManager(seedFile)
	if err != nil {
		log.Fatalf("failed to load snippet catalog: %v", err)
	}

	am := assembly.NewManager()
	gm := globals.NewManager()
	svc := generator.NewService(am, gm)
	router := api.RegisterRoutes(cm, am, gm, svc)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("scriptweaver listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
