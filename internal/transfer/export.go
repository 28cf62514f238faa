// Package transfer serializes the note collection to a portable document and
// validates and merges externally supplied collections back in.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrossetti/notekeep/internal/note"
)

// Version identifies the export document format.
const Version = "1.0"

// ErrNoNotes is returned when there is nothing to export.
var ErrNoNotes = errors.New("no notes found")

// Document is the portable export format: the full note collection plus
// format metadata.
type Document struct {
	Version    string      `json:"version"`
	ExportDate time.Time   `json:"exportDate"`
	Notes      []note.Note `json:"notes"`
}

type Engine struct {
	notes *note.Repository
}

func NewEngine(notes *note.Repository) *Engine {
	return &Engine{notes: notes}
}

// ExportAll serializes the entire current collection verbatim. An empty
// collection is an explicit failure, not an empty document.
func (e *Engine) ExportAll() (*Document, error) {
	notes := e.notes.All()
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}
	return &Document{
		Version:    Version,
		ExportDate: time.Now(),
		Notes:      notes,
	}, nil
}

// Filename builds the timestamped export file name.
func Filename(now time.Time) string {
	return fmt.Sprintf("notes-export-%s.json", now.Format("2006-01-02T15-04-05"))
}

// WriteFile exports the collection to a pretty-printed JSON file under dir
// and returns the full path.
func (e *Engine) WriteFile(dir string) (string, error) {
	doc, err := e.ExportAll()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}

	path := filepath.Join(dir, Filename(doc.ExportDate))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
