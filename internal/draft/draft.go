// Package draft keeps the single in-progress, unsaved note. The slot is
// session-scoped: it survives screen changes but not a restart, and starting
// a second create flow overwrites the first.
package draft

import (
	"time"

	"github.com/mrossetti/notekeep/internal/storage"
)

type Draft struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	LastEdited time.Time `json:"lastEdited"`
}

type Store struct {
	store storage.Store
}

func NewStore(store storage.Store) *Store {
	return &Store{store: store}
}

// Save overwrites the draft slot and stamps LastEdited.
func (s *Store) Save(d Draft) storage.SaveResult {
	d.LastEdited = time.Now()
	return s.store.Save(storage.KeyDraft, d)
}

// Load returns the pending draft, or ok == false when there is none.
func (s *Store) Load() (Draft, bool) {
	var d Draft
	if !s.store.Load(storage.KeyDraft, &d) {
		return Draft{}, false
	}
	return d, true
}

// Clear discards the draft; called on successful note creation or explicit
// discard.
func (s *Store) Clear() {
	s.store.Delete(storage.KeyDraft)
}
