package globals_test

import (
	"testing"

	"scriptweaver/globals"
)

func TestAddGeneratesSequentialKeys(t *testing.T) {
	m := globals.NewManager()

	a := m.Add()
	b := m.Add()
	if a.Key != "var1" || b.Key != "var2" {
		t.Fatalf("expected var1, var2; got %q, %q", a.Key, b.Key)
	}
	if a.Name == "" || a.Label == "" {
		t.Fatalf("expected defaulted name and label, got %+v", a)
	}
	if a.Value != "" {
		t.Fatalf("new variable should have empty value, got %q", a.Value)
	}
}

// Deleting a variable must not free its key for reuse.
func TestKeysUniqueAcrossDeleteAndReAdd(t *testing.T) {
	m := globals.NewManager()

	m.Add() // var1
	b := m.Add()
	if err := m.Remove(b.Key); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	c := m.Add()
	if c.Key == b.Key {
		t.Fatalf("key %q reissued after delete", c.Key)
	}
	if c.Key != "var3" {
		t.Fatalf("expected var3, got %q", c.Key)
	}
}

func TestUpdateField(t *testing.T) {
	m := globals.NewManager()
	v := m.Add()

	for field, want := range map[string]string{
		"name":  "apiUrl",
		"label": "API URL",
		"value": "https://example.com",
	} {
		if err := m.UpdateField(v.Key, field, want); err != nil {
			t.Fatalf("UpdateField(%s): %v", field, err)
		}
	}

	got := m.List()[0]
	if got.Name != "apiUrl" || got.Label != "API URL" || got.Value != "https://example.com" {
		t.Fatalf("unexpected variable after updates: %+v", got)
	}
}

func TestUpdateFieldErrors(t *testing.T) {
	m := globals.NewManager()
	v := m.Add()

	if err := m.UpdateField(v.Key, "color", "red"); err != globals.ErrUnknownField {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := m.UpdateField("ghost", "name", "x"); err != globals.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	m := globals.NewManager()
	v := m.Add()

	if err := m.Remove(v.Key); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(m.List()) != 0 {
		t.Fatalf("expected empty table, got %v", m.List())
	}
	if err := m.Remove(v.Key); err != globals.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestMapSnapshot(t *testing.T) {
	m := globals.NewManager()
	v := m.Add()
	m.UpdateField(v.Key, "value", "42")

	snap := m.Map()
	if snap[v.Key].Value != "42" {
		t.Fatalf("expected snapshot value 42, got %q", snap[v.Key].Value)
	}

	// Mutating the snapshot must not touch manager state.
	entry := snap[v.Key]
	entry.Value = "tampered"
	snap[v.Key] = entry
	if m.List()[0].Value != "42" {
		t.Fatal("Map must return a copy of the table")
	}
}
