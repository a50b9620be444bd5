// Package project persists solved layouts as JSON documents. The on-disk
// record mirrors the in-memory model field for field, so a saved layout
// loads back identical to what the solver produced.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/planwise/roomplan/internal/model"
)

// Document is the top-level structure written to disk.
type Document struct {
	Version   string       `json:"version"`
	CreatedAt string       `json:"created_at"`
	Layout    model.Layout `json:"layout"`
}

const formatVersion = "1.0.0"

// SaveLayout writes a layout to path as indented JSON, creating missing
// parent directories.
func SaveLayout(path string, layout *model.Layout) error {
	doc := Document{
		Version:   formatVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Layout:    *layout,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := backupExisting(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLayout reads a layout document back from disk.
func LoadLayout(path string) (*model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing layout file: %w", err)
	}
	return &doc.Layout, nil
}
