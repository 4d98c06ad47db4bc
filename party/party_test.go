// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package party

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()

	if len(d.All()) != 3 {
		t.Fatalf("expected 3 default parties, got %d", len(d.All()))
	}

	p, ok := d.Lookup(2)
	if !ok {
		t.Fatal("expected party 2 to exist")
	}
	if p.Name != "The Liberal Party" {
		t.Errorf("unexpected name for party 2: %s", p.Name)
	}

	if _, ok := d.Lookup(99); ok {
		t.Error("lookup of unknown id should fail")
	}
}

func TestNewDirectory_RejectsDuplicates(t *testing.T) {
	_, err := NewDirectory([]Party{
		{ID: 1, Name: "A"},
		{ID: 1, Name: "B"},
	})
	if err == nil {
		t.Error("expected error for duplicate party ids")
	}
}

func TestNewDirectory_RejectsInvalidID(t *testing.T) {
	_, err := NewDirectory([]Party{{ID: 0, Name: "Zero"}})
	if err == nil {
		t.Error("expected error for non-positive party id")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parties.json")
	content := `[
		{"id": 10, "name": "Test Party", "logo": "http://example.com/logo.png"},
		{"id": 20, "name": "Other Party", "logo": ""}
	]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(d.All()) != 2 {
		t.Fatalf("expected 2 parties, got %d", len(d.All()))
	}
	p, ok := d.Lookup(10)
	if !ok || p.Name != "Test Party" {
		t.Errorf("unexpected lookup result: %+v ok=%v", p, ok)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/parties.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parties.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for empty party list")
	}
}
