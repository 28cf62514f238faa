package note

import (
	"time"

	"github.com/mrossetti/notekeep/internal/apperror"
	"github.com/mrossetti/notekeep/internal/storage"
)

// Repository owns the note collection. Every mutation is a whole-collection
// read-modify-write against the durable store: last write wins, at the
// granularity of the entire collection, and a failed write discards the
// in-memory mutation rather than retrying.
type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// All loads the full collection. A missing or corrupt collection is an empty
// one.
func (r *Repository) All() []Note {
	var notes []Note
	if !r.store.Load(storage.KeyNotes, &notes) {
		return []Note{}
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes
}

// Get returns the note with the given id, or nil when absent.
func (r *Repository) Get(id string) *Note {
	for _, n := range r.All() {
		if n.ID == id {
			return &n
		}
	}
	return nil
}

// Add appends a note built with New to the collection and persists it.
func (r *Repository) Add(n Note) error {
	notes := append(r.All(), n)
	return r.store.Save(storage.KeyNotes, notes).Err()
}

// Patch is a partial note update. Nil fields are left untouched; Tags and
// Location replace wholesale when set. Setting CategoryID to a pointer to
// the empty string detaches the note from its category.
type Patch struct {
	Title      *string
	Content    *string
	Tags       []string
	IsArchived *bool
	CategoryID *string
	Location   *Location
}

// Update shallow-merges patch over the stored note, refreshes LastEdited
// unconditionally and persists the whole collection. A missing id is a
// tagged not-found failure, never a panic.
func (r *Repository) Update(id string, patch Patch) (*Note, error) {
	notes := r.All()
	idx := -1
	for i := range notes {
		if notes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NotFound("note")
	}

	n := &notes[idx]
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.Tags != nil {
		n.Tags = normalizeTags(patch.Tags)
	}
	if patch.IsArchived != nil {
		n.IsArchived = *patch.IsArchived
	}
	if patch.CategoryID != nil {
		n.CategoryID = *patch.CategoryID
	}
	if patch.Location != nil {
		n.Location = patch.Location
	}
	n.LastEdited = time.Now()

	if err := r.store.Save(storage.KeyNotes, notes).Err(); err != nil {
		return nil, err
	}
	updated := *n
	return &updated, nil
}

// Delete filters the id out of the collection and persists the result.
// Deleting a nonexistent id is a no-op success; removed reports whether a
// note was actually dropped.
func (r *Repository) Delete(id string) (removed bool, err error) {
	notes := r.All()
	kept := notes[:0]
	for _, n := range notes {
		if n.ID == id {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	if err := r.store.Save(storage.KeyNotes, kept).Err(); err != nil {
		return false, err
	}
	return removed, nil
}

// ReplaceAll overwrites the entire collection in one write. Used by the
// import engine and by the category cascade.
func (r *Repository) ReplaceAll(notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}
	return r.store.Save(storage.KeyNotes, notes).Err()
}

// Search matches query case-insensitively against title, content and tags.
// Short-circuiting an empty query is the caller's concern.
func (r *Repository) Search(query string) []Note {
	var out []Note
	for _, n := range r.All() {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}

func (r *Repository) FilterByTag(tag string) []Note {
	var out []Note
	for _, n := range r.All() {
		if n.HasTag(tag) {
			out = append(out, n)
		}
	}
	return out
}

func (r *Repository) FilterByCategory(categoryID string) []Note {
	var out []Note
	for _, n := range r.All() {
		if n.CategoryID == categoryID {
			out = append(out, n)
		}
	}
	return out
}

func (r *Repository) Archived() []Note {
	var out []Note
	for _, n := range r.All() {
		if n.IsArchived {
			out = append(out, n)
		}
	}
	return out
}

func (r *Repository) Unarchived() []Note {
	var out []Note
	for _, n := range r.All() {
		if !n.IsArchived {
			out = append(out, n)
		}
	}
	return out
}
