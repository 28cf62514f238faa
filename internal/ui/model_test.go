package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrossetti/notekeep/internal/auth"
	"github.com/mrossetti/notekeep/internal/category"
	"github.com/mrossetti/notekeep/internal/config"
	"github.com/mrossetti/notekeep/internal/draft"
	"github.com/mrossetti/notekeep/internal/geo"
	"github.com/mrossetti/notekeep/internal/note"
	"github.com/mrossetti/notekeep/internal/prefs"
	"github.com/mrossetti/notekeep/internal/share"
	"github.com/mrossetti/notekeep/internal/storage"
	"github.com/mrossetti/notekeep/internal/transfer"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	store := storage.NewSession(zap.NewNop())
	notes := note.NewRepository(store)
	return Deps{
		Notes:      notes,
		Categories: category.NewRepository(store, notes),
		Auth:       auth.NewManager(store),
		Drafts:     draft.NewStore(store),
		Prefs:      prefs.NewStore(store),
		Transfer:   transfer.NewEngine(notes),
		Share:      share.NewService("https://notekeep.example/share", notes),
		Location:   geo.Fixed{},
		Geocoder:   geo.NewClient(""),
		Config: &config.Config{
			AutoSaveInterval: 3 * time.Second,
			ExportDir:        t.TempDir(),
		},
	}
}

func TestImportFile(t *testing.T) {
	deps := newTestDeps(t)
	m := NewModel(deps)

	path := filepath.Join(t.TempDir(), "export.json")
	raw := []byte(`[
		{"id": "1", "title": "a", "content": "c", "tags": []},
		{"title": "rejected", "content": "", "tags": []}
	]`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	msg := m.importFile(path)()
	done, ok := msg.(importDoneMsg)
	require.True(t, ok, "expected importDoneMsg, got %T", msg)
	assert.Equal(t, 1, done.result.Imported)
	require.Len(t, done.result.Errors, 1)

	require.Len(t, deps.Notes.All(), 1)
	assert.NotNil(t, deps.Notes.Get("1"))
}

func TestImportFile_ReplaceToggle(t *testing.T) {
	deps := newTestDeps(t)
	existing := note.New("mine", "local", nil)
	require.NoError(t, deps.Notes.Add(existing))

	m := NewModel(deps)
	m.importReplace = true

	path := filepath.Join(t.TempDir(), "export.json")
	raw := []byte(`[{"id": "` + existing.ID + `", "title": "theirs", "content": "c", "tags": []}]`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	msg := m.importFile(path)()
	done, ok := msg.(importDoneMsg)
	require.True(t, ok)
	assert.Equal(t, 1, done.result.Imported)
	assert.Equal(t, "theirs", deps.Notes.Get(existing.ID).Title)
}

func TestImportFile_UnreadablePath(t *testing.T) {
	m := NewModel(newTestDeps(t))

	msg := m.importFile(filepath.Join(t.TempDir(), "missing.json"))()
	e, ok := msg.(errMsg)
	require.True(t, ok, "expected errMsg, got %T", msg)
	assert.Contains(t, e.Error(), "failed to read import file")
}

func TestNormalMode_OpensImportAndSettings(t *testing.T) {
	m := NewModel(newTestDeps(t))
	m.mode = ModeNormal

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, ModeImport, updated.(Model).mode)

	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, ModeSettings, updated.(Model).mode)
}

func TestNextColorTheme(t *testing.T) {
	assert.Equal(t, "dark", nextColorTheme("light"))
	assert.Equal(t, "system", nextColorTheme("dark"))
	assert.Equal(t, "light", nextColorTheme("system"))
}

func TestNextFontTheme(t *testing.T) {
	assert.Equal(t, "serif", nextFontTheme("sans-serif"))
	assert.Equal(t, "monospace", nextFontTheme("serif"))
	assert.Equal(t, "sans-serif", nextFontTheme("monospace"))
}

func TestCycleColorTheme_Persists(t *testing.T) {
	deps := newTestDeps(t)
	m := NewModel(deps)

	_, cmd := m.cycleColorTheme()
	assert.Nil(t, cmd)
	assert.Equal(t, "dark", deps.Prefs.ColorTheme())
}

func TestCycleFontTheme_Persists(t *testing.T) {
	deps := newTestDeps(t)
	m := NewModel(deps)

	_, cmd := m.cycleFontTheme()
	assert.Nil(t, cmd)
	assert.Equal(t, "serif", deps.Prefs.FontTheme())
}

func TestSubmitPasswordChange(t *testing.T) {
	deps := newTestDeps(t)
	_, err := deps.Auth.Signup("user@example.com", "original-pw")
	require.NoError(t, err)

	m := NewModel(deps)
	m.currentPwInput.SetValue("original-pw")
	m.newPwInput.SetValue("replacement-pw")

	updated, _ := m.submitPasswordChange()
	mm := updated.(Model)
	assert.Empty(t, mm.errText)
	assert.NotEmpty(t, mm.status)

	deps.Auth.Logout()
	_, err = deps.Auth.Login("user@example.com", "replacement-pw")
	assert.NoError(t, err)
}

func TestSubmitPasswordChange_WrongCurrent(t *testing.T) {
	deps := newTestDeps(t)
	_, err := deps.Auth.Signup("user@example.com", "original-pw")
	require.NoError(t, err)

	m := NewModel(deps)
	m.currentPwInput.SetValue("not-the-password")
	m.newPwInput.SetValue("replacement-pw")

	updated, _ := m.submitPasswordChange()
	assert.NotEmpty(t, updated.(Model).errText)
}
