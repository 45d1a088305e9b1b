package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scriptweaver/api"
	"scriptweaver/assembly"
	"scriptweaver/catalog"
	"scriptweaver/generator"
	"scriptweaver/globals"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cm, err := catalog.NewManager("")
	if err != nil {
		t.Fatalf("catalog.NewManager: %v", err)
	}
	am := assembly.NewManager()
	gm := globals.NewManager()
	svc := generator.NewService(am, gm)
	return httptest.NewServer(api.RegisterRoutes(cm, am, gm, svc))
}

func TestListSnippets(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/snippets")
	if err != nil {
		t.Fatalf("GET /api/snippets: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var snippets []catalog.Snippet
	json.NewDecoder(resp.Body).Decode(&snippets)
	if len(snippets) == 0 {
		t.Fatal("expected built-in snippets")
	}
}

func TestListSnippetsFiltered(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/snippets?q=console&category=Utilities")
	if err != nil {
		t.Fatalf("GET filtered: %v", err)
	}
	defer resp.Body.Close()

	var snippets []catalog.Snippet
	json.NewDecoder(resp.Body).Decode(&snippets)
	if len(snippets) != 1 || snippets[0].ID != "console-log" {
		t.Fatalf("expected only console-log, got %+v", snippets)
	}
}

func TestListCategories(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/categories")
	if err != nil {
		t.Fatalf("GET /api/categories: %v", err)
	}
	defer resp.Body.Close()

	var cats []string
	json.NewDecoder(resp.Body).Decode(&cats)
	if len(cats) == 0 || cats[len(cats)-1] != catalog.CategoryCustom {
		t.Fatalf("unexpected categories: %v", cats)
	}
}

func TestAddCustomSnippet(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	body := `{"name":"Log","description":"log stuff","category":"Utilities","code":"console.log('%a%')","params":"a, ,b"}`
	resp, err := http.Post(srv.URL+"/api/snippets", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/snippets: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var s catalog.Snippet
	json.NewDecoder(resp.Body).Decode(&s)
	if !s.Custom || s.ID == "" {
		t.Fatalf("unexpected snippet: %+v", s)
	}
	if len(s.Params) != 2 || s.Params[0] != "a" || s.Params[1] != "b" {
		t.Fatalf("expected params [a b], got %v", s.Params)
	}
}

func TestAddCustomSnippetRejected(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	body := `{"name":"","code":"console.log(1)"}`
	resp, err := http.Post(srv.URL+"/api/snippets", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
