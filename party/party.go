// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package party

import (
	"encoding/json"
	"fmt"
	"os"
)

// Party is static reference data: contesting parties are configured at
// deploy time, never written by this service.
type Party struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Directory is the single shared party table, injected wherever party data
// is needed (tally fallback, dashboard, vote validation).
type Directory struct {
	parties []Party
	byID    map[int]Party
}

func NewDirectory(parties []Party) (*Directory, error) {
	byID := make(map[int]Party, len(parties))
	for _, p := range parties {
		if p.ID <= 0 {
			return nil, fmt.Errorf("party %q has invalid id %d", p.Name, p.ID)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate party id %d", p.ID)
		}
		byID[p.ID] = p
	}
	return &Directory{parties: parties, byID: byID}, nil
}

// Default returns the built-in directory used when no parties file is
// configured.
func Default() *Directory {
	d, _ := NewDirectory([]Party{
		{ID: 1, Name: "Liberal Centric Party", Logo: "/static/logos/liberal_centric.png"},
		{ID: 2, Name: "The Liberal Party", Logo: "/static/logos/liberal.png"},
		{ID: 3, Name: "National Liberal Party", Logo: "/static/logos/national_liberal.png"},
	})
	return d
}

// LoadFile reads a JSON array of parties from disk.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parties file: %w", err)
	}

	var parties []Party
	if err := json.Unmarshal(data, &parties); err != nil {
		return nil, fmt.Errorf("parse parties file: %w", err)
	}
	if len(parties) == 0 {
		return nil, fmt.Errorf("parties file %s contains no parties", path)
	}

	return NewDirectory(parties)
}

// All returns the parties in their configured order.
func (d *Directory) All() []Party {
	return d.parties
}

// Lookup returns the party with the given id.
func (d *Directory) Lookup(id int) (Party, bool) {
	p, ok := d.byID[id]
	return p, ok
}
