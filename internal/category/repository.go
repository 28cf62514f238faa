package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mrossetti/notekeep/internal/apperror"
	"github.com/mrossetti/notekeep/internal/note"
	"github.com/mrossetti/notekeep/internal/storage"
)

// Repository owns the category collection. It also reaches into the note
// repository: deleting a category must detach it from every referencing
// note, and note counts are derived from the note collection.
type Repository struct {
	store storage.Store
	notes *note.Repository
}

func NewRepository(store storage.Store, notes *note.Repository) *Repository {
	return &Repository{store: store, notes: notes}
}

func (r *Repository) All() []Category {
	var categories []Category
	if !r.store.Load(storage.KeyCategories, &categories) {
		return []Category{}
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories
}

func (r *Repository) Get(id string) *Category {
	for _, c := range r.All() {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

// Create rejects case-insensitive name collisions before inserting.
func (r *Repository) Create(name, color, icon string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation(apperror.FieldGeneral, "category name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, apperror.Validation(apperror.FieldGeneral,
			fmt.Sprintf("category name must be at most %d characters", MaxNameLength))
	}

	categories := r.All()
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return nil, apperror.Duplicate(apperror.FieldGeneral, "category with this name already exists")
		}
	}

	created := New(name, color, icon)
	categories = append(categories, created)
	if err := r.store.Save(storage.KeyCategories, categories).Err(); err != nil {
		return nil, err
	}
	return &created, nil
}

// Patch is a partial category update; nil fields are untouched.
type Patch struct {
	Name  *string
	Color *string
	Icon  *string
}

// Update applies patch, re-running the collision check against every other
// category when the name changes.
func (r *Repository) Update(id string, patch Patch) (*Category, error) {
	categories := r.All()
	idx := -1
	for i := range categories {
		if categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NotFound("category")
	}

	c := &categories[idx]
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperror.Validation(apperror.FieldGeneral, "category name is required")
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return nil, apperror.Validation(apperror.FieldGeneral,
				fmt.Sprintf("category name must be at most %d characters", MaxNameLength))
		}
		for i, other := range categories {
			if i != idx && strings.EqualFold(other.Name, name) {
				return nil, apperror.Duplicate(apperror.FieldGeneral, "category with this name already exists")
			}
		}
		c.Name = name
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.Icon != nil {
		c.Icon = *patch.Icon
	}

	if err := r.store.Save(storage.KeyCategories, categories).Err(); err != nil {
		return nil, err
	}
	updated := *c
	return &updated, nil
}

// Delete detaches the category from every referencing note, then removes the
// record. Both writes are attempted even when the first fails; the first
// failure is what the caller sees.
func (r *Repository) Delete(id string) error {
	categories := r.All()
	found := false
	kept := categories[:0]
	for _, c := range categories {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return apperror.NotFound("category")
	}

	notes := r.notes.All()
	for i := range notes {
		if notes[i].CategoryID == id {
			notes[i].CategoryID = ""
		}
	}
	detachErr := r.notes.ReplaceAll(notes)
	removeErr := r.store.Save(storage.KeyCategories, kept).Err()

	if detachErr != nil {
		return detachErr
	}
	return removeErr
}

// RefreshNoteCount recomputes and persists the denormalized count for one
// category. It is a lazy cache refresh, not an authoritative counter; an
// unknown id is a no-op.
func (r *Repository) RefreshNoteCount(id string) error {
	categories := r.All()
	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		categories[i].NoteCount = len(r.notes.FilterByCategory(id))
		return r.store.Save(storage.KeyCategories, categories).Err()
	}
	return nil
}

// WithCounts returns the categories with freshly computed note counts. It
// never writes; the persisted NoteCount may diverge until a refresh.
func (r *Repository) WithCounts() []Category {
	categories := r.All()
	notes := r.notes.All()

	counts := make(map[string]int, len(categories))
	for _, n := range notes {
		if n.CategoryID != "" {
			counts[n.CategoryID]++
		}
	}
	for i := range categories {
		categories[i].NoteCount = counts[categories[i].ID]
	}
	return categories
}
