package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrossetti/notekeep/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.NewSession(zap.NewNop()))
}

func TestLoad_EmptySlot(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Load()
	assert.False(t, ok)
}

func TestSave_StampsLastEdited(t *testing.T) {
	s := newTestStore(t)

	res := s.Save(Draft{Title: "wip", Content: "half a thought"})
	require.True(t, res.Success)

	d, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, "wip", d.Title)
	assert.False(t, d.LastEdited.IsZero())
}

func TestSave_OverwritesSlot(t *testing.T) {
	s := newTestStore(t)

	require.True(t, s.Save(Draft{Title: "first"}).Success)
	require.True(t, s.Save(Draft{Title: "second"}).Success)

	d, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, "second", d.Title)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	require.True(t, s.Save(Draft{Title: "wip"}).Success)
	s.Clear()

	_, ok := s.Load()
	assert.False(t, ok)

	// Clearing an empty slot is fine.
	s.Clear()
}
