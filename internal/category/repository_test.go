package category

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrossetti/notekeep/internal/apperror"
	"github.com/mrossetti/notekeep/internal/note"
	"github.com/mrossetti/notekeep/internal/storage"
)

func newTestRepos(t *testing.T) (*Repository, *note.Repository) {
	t.Helper()
	store := storage.NewSession(zap.NewNop())
	notes := note.NewRepository(store)
	return NewRepository(store, notes), notes
}

// keyFailingStore fails writes to one key once armed, for exercising the
// partial-failure paths of the cascade delete.
type keyFailingStore struct {
	storage.Store
	failKey string
}

func (f *keyFailingStore) Save(key string, value any) storage.SaveResult {
	if key == f.failKey {
		return storage.SaveResult{Kind: storage.ErrorQuota, Message: "injected failure"}
	}
	return f.Store.Save(key, value)
}

func TestCreate(t *testing.T) {
	r, _ := newTestRepos(t)

	c, err := r.Create("  Work  ", "#335CFF", "💼")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Work", c.Name)
	assert.Equal(t, "#335CFF", c.Color)
	assert.Equal(t, "💼", c.Icon)
	assert.False(t, c.CreatedAt.IsZero())

	require.Len(t, r.All(), 1)
}

func TestCreate_AssignsRandomColorWhenEmpty(t *testing.T) {
	r, _ := newTestRepos(t)

	c, err := r.Create("Personal", "", "")
	require.NoError(t, err)
	assert.Contains(t, palette, c.Color)
}

func TestCreate_Validation(t *testing.T) {
	r, _ := newTestRepos(t)

	_, err := r.Create("   ", "", "")
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	_, err = r.Create(strings.Repeat("x", MaxNameLength+1), "", "")
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestCreate_NameLengthCountsRunes(t *testing.T) {
	r, _ := newTestRepos(t)

	// 30 accented runes are 60 bytes but still within the limit.
	_, err := r.Create(strings.Repeat("è", MaxNameLength), "", "")
	require.NoError(t, err)

	_, err = r.Create(strings.Repeat("é", MaxNameLength+1), "", "")
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestCreate_RejectsCaseInsensitiveDuplicate(t *testing.T) {
	r, _ := newTestRepos(t)

	_, err := r.Create("Work", "", "")
	require.NoError(t, err)

	_, err = r.Create("WORK", "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrDuplicate))
}

func TestUpdate(t *testing.T) {
	r, _ := newTestRepos(t)

	c, err := r.Create("Work", "", "")
	require.NoError(t, err)

	name := "Office"
	color := "#FF6B6B"
	updated, err := r.Update(c.ID, Patch{Name: &name, Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Name)
	assert.Equal(t, "#FF6B6B", updated.Color)
}

func TestUpdate_CollisionExcludesSelf(t *testing.T) {
	r, _ := newTestRepos(t)

	a, err := r.Create("Work", "", "")
	require.NoError(t, err)
	_, err = r.Create("Personal", "", "")
	require.NoError(t, err)

	// Renaming to its own name (different case) is allowed.
	name := "WORK"
	_, err = r.Update(a.ID, Patch{Name: &name})
	require.NoError(t, err)

	// Renaming onto another category is not.
	name = "personal"
	_, err = r.Update(a.ID, Patch{Name: &name})
	assert.True(t, errors.Is(err, apperror.ErrDuplicate))
}

func TestUpdate_UnknownID(t *testing.T) {
	r, _ := newTestRepos(t)

	name := "x"
	_, err := r.Update("missing", Patch{Name: &name})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDelete_DetachesReferencingNotes(t *testing.T) {
	r, notes := newTestRepos(t)

	c, err := r.Create("Work", "", "")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		n := note.New("n", "c", nil)
		n.CategoryID = c.ID
		require.NoError(t, notes.Add(n))
	}
	other := note.New("other", "c", nil)
	other.CategoryID = "unrelated"
	require.NoError(t, notes.Add(other))

	require.NoError(t, r.Delete(c.ID))

	assert.Len(t, r.All(), 0)
	assert.Len(t, notes.FilterByCategory(c.ID), 0)
	assert.Len(t, notes.FilterByCategory("unrelated"), 1)
	assert.Len(t, notes.All(), 4)
}

func TestDelete_AttemptsBothWritesWhenDetachFails(t *testing.T) {
	base := storage.NewSession(zap.NewNop())
	fs := &keyFailingStore{Store: base}
	notes := note.NewRepository(fs)
	r := NewRepository(fs, notes)

	c, err := r.Create("Work", "", "")
	require.NoError(t, err)
	n := note.New("n", "c", nil)
	n.CategoryID = c.ID
	require.NoError(t, notes.Add(n))

	fs.failKey = storage.KeyNotes
	err = r.Delete(c.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrQuotaExceeded))

	// The category write still ran: the record is gone even though the
	// note detach failed.
	assert.Nil(t, r.Get(c.ID))
	assert.Len(t, notes.FilterByCategory(c.ID), 1)
}

func TestDelete_AttemptsBothWritesWhenRemoveFails(t *testing.T) {
	base := storage.NewSession(zap.NewNop())
	fs := &keyFailingStore{Store: base}
	notes := note.NewRepository(fs)
	r := NewRepository(fs, notes)

	c, err := r.Create("Work", "", "")
	require.NoError(t, err)
	n := note.New("n", "c", nil)
	n.CategoryID = c.ID
	require.NoError(t, notes.Add(n))

	fs.failKey = storage.KeyCategories
	err = r.Delete(c.ID)
	require.Error(t, err)

	// Detach went through; only the record removal failed.
	assert.Len(t, notes.FilterByCategory(c.ID), 0)
	assert.NotNil(t, r.Get(c.ID))
}

func TestDelete_UnknownID(t *testing.T) {
	r, _ := newTestRepos(t)
	assert.True(t, errors.Is(r.Delete("missing"), apperror.ErrNotFound))
}

func TestWithCounts(t *testing.T) {
	r, notes := newTestRepos(t)

	work, err := r.Create("Work", "", "")
	require.NoError(t, err)
	personal, err := r.Create("Personal", "", "")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		n := note.New("n", "c", nil)
		n.CategoryID = work.ID
		require.NoError(t, notes.Add(n))
	}

	counts := map[string]int{}
	for _, c := range r.WithCounts() {
		counts[c.ID] = c.NoteCount
	}
	assert.Equal(t, 2, counts[work.ID])
	assert.Equal(t, 0, counts[personal.ID])

	// WithCounts never writes; the stored record keeps its stale count.
	stored := r.Get(work.ID)
	require.NotNil(t, stored)
	assert.Equal(t, 0, stored.NoteCount)
}

func TestRefreshNoteCount(t *testing.T) {
	r, notes := newTestRepos(t)

	c, err := r.Create("Work", "", "")
	require.NoError(t, err)

	n := note.New("n", "c", nil)
	n.CategoryID = c.ID
	require.NoError(t, notes.Add(n))

	require.NoError(t, r.RefreshNoteCount(c.ID))
	stored := r.Get(c.ID)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.NoteCount)

	// Unknown ids refresh nothing and report no failure.
	require.NoError(t, r.RefreshNoteCount("missing"))
}
