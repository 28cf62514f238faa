// Package prefs stores user preferences as a free-form document that is
// merged, never replaced, on every write.
package prefs

import "github.com/mrossetti/notekeep/internal/storage"

// Known preference keys and their defaults.
const (
	KeyColorTheme = "colorTheme"
	KeyFontTheme  = "fontTheme"

	DefaultColorTheme = "light"
	DefaultFontTheme  = "sans-serif"
)

type Store struct {
	store storage.Store
}

func NewStore(store storage.Store) *Store {
	return &Store{store: store}
}

// Load returns the preferences document; missing or corrupt data is an
// empty document.
func (s *Store) Load() map[string]any {
	prefs := map[string]any{}
	s.store.Load(storage.KeyPreferences, &prefs)
	if prefs == nil {
		prefs = map[string]any{}
	}
	return prefs
}

// Save merges updates over the stored document and writes the result back.
// Keys not present in updates survive.
func (s *Store) Save(updates map[string]any) storage.SaveResult {
	prefs := s.Load()
	for k, v := range updates {
		prefs[k] = v
	}
	return s.store.Save(storage.KeyPreferences, prefs)
}

func (s *Store) get(key, fallback string) string {
	if v, ok := s.Load()[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func (s *Store) ColorTheme() string {
	return s.get(KeyColorTheme, DefaultColorTheme)
}

func (s *Store) FontTheme() string {
	return s.get(KeyFontTheme, DefaultFontTheme)
}
