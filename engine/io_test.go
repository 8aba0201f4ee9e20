package engine

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	values := map[string]*Value{
		"w.0": New(0.25),
		"w.1": New(-1.5),
		"b":   New(0),
	}
	if err := SaveValues(path, values); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadValues(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != len(values) {
		t.Fatalf("loaded %d records, want %d", len(loaded), len(values))
	}
	for name, v := range values {
		if loaded[name] != v.Data() {
			t.Fatalf("record %s: got %v want %v", name, loaded[name], v.Data())
		}
	}
}

func TestSaveValuesRejectsEmptyAndNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	if err := SaveValues(path, nil); err == nil {
		t.Fatalf("expected error for empty value set")
	}
	if err := SaveValues(path, map[string]*Value{"w": nil}); err == nil {
		t.Fatalf("expected error for nil value")
	}
}

func TestLoadValuesMissingFile(t *testing.T) {
	if _, err := LoadValues(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
