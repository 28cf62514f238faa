package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrossetti/notekeep/internal/apperror"
	"github.com/mrossetti/notekeep/internal/auth"
	"github.com/mrossetti/notekeep/internal/category"
	"github.com/mrossetti/notekeep/internal/config"
	"github.com/mrossetti/notekeep/internal/draft"
	"github.com/mrossetti/notekeep/internal/geo"
	"github.com/mrossetti/notekeep/internal/i18n"
	"github.com/mrossetti/notekeep/internal/note"
	"github.com/mrossetti/notekeep/internal/prefs"
	"github.com/mrossetti/notekeep/internal/share"
	"github.com/mrossetti/notekeep/internal/transfer"
)

type Mode int

const (
	ModeAuth Mode = iota
	ModeNormal
	ModeEditing
	ModeNewNote
	ModeSearch
	ModeConfirmDelete
	ModeCategory
	ModeImport
	ModeSettings
	ModeHelp
)

type authScreen int

const (
	authLogin authScreen = iota
	authSignup
)

type editFocus int

const (
	focusTitle editFocus = iota
	focusContent
	focusTags
)

// Deps is everything the presentation layer calls into. The UI holds no
// logic of its own: every mutation goes through a repository or manager and
// every result is checked.
type Deps struct {
	Notes      *note.Repository
	Categories *category.Repository
	Auth       *auth.Manager
	Drafts     *draft.Store
	Prefs      *prefs.Store
	Transfer   *transfer.Engine
	Share      *share.Service
	Location   geo.Provider
	Geocoder   *geo.Client
	Config     *config.Config
}

type Model struct {
	deps   Deps
	keys   KeyMap
	styles Styles

	mode     Mode
	prevMode Mode

	// Auth screen
	screen        authScreen
	emailInput    textinput.Model
	passwordInput textinput.Model
	authFocus     int
	fieldErrors   map[string]string

	// List
	notes        []note.Note
	cursor       int
	showArchived bool
	searchQuery  string

	// Editor
	editingID  string // empty while creating
	titleInput textinput.Model
	textarea   textarea.Model
	tagsInput  textinput.Model
	focus      editFocus

	// Search
	searchInput textinput.Model

	// Category picker
	categories  []category.Category
	catCursor   int
	catInput    textinput.Model
	catCreating bool

	// Delete confirm
	deleteID    string
	deleteTitle string

	// Import dialog
	importInput   textinput.Model
	importReplace bool

	// Settings
	settingsCursor int
	pwEditing      bool
	pwFocus        int
	currentPwInput textinput.Model
	newPwInput     textinput.Model

	status  string
	errText string

	width  int
	height int
}

type tickMsg time.Time
type notesLoadedMsg []note.Note
type categoriesLoadedMsg []category.Category
type statusMsg string
type errMsg error
type locationSavedMsg struct{ noteID string }
type importDoneMsg struct{ result *transfer.Result }

func NewModel(deps Deps) Model {
	t := i18n.T()

	email := textinput.New()
	email.Placeholder = t.EmailLabel
	email.CharLimit = 256
	email.Focus()

	password := textinput.New()
	password.Placeholder = t.PasswordLabel
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 256

	title := textinput.New()
	title.Placeholder = t.TitlePlaceholder
	title.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = t.NotePlaceholder
	ta.ShowLineNumbers = false

	tags := textinput.New()
	tags.Placeholder = t.TagsPlaceholder
	tags.CharLimit = 512

	search := textinput.New()
	search.Placeholder = t.Search + "..."
	search.CharLimit = 256

	catInput := textinput.New()
	catInput.Placeholder = t.Category + "..."
	catInput.CharLimit = category.MaxNameLength

	importInput := textinput.New()
	importInput.Placeholder = t.ImportPlaceholder
	importInput.CharLimit = 1024

	currentPw := textinput.New()
	currentPw.Placeholder = t.CurrentPassword
	currentPw.EchoMode = textinput.EchoPassword
	currentPw.CharLimit = 256

	newPw := textinput.New()
	newPw.Placeholder = t.NewPassword
	newPw.EchoMode = textinput.EchoPassword
	newPw.CharLimit = 256

	m := Model{
		deps:           deps,
		keys:           NewKeyMap(),
		styles:         NewStyles(ThemeFor(deps.Prefs.ColorTheme())),
		mode:           ModeAuth,
		emailInput:     email,
		passwordInput:  password,
		titleInput:     title,
		textarea:       ta,
		tagsInput:      tags,
		searchInput:    search,
		catInput:       catInput,
		importInput:    importInput,
		currentPwInput: currentPw,
		newPwInput:     newPw,
		fieldErrors:    map[string]string{},
	}

	if deps.Auth.IsAuthenticated() {
		m.mode = ModeNormal
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadNotes(), m.loadCategories(), m.tickCmd())
}

func (m Model) tickCmd() tea.Cmd {
	interval := m.deps.Config.AutoSaveInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadNotes() tea.Cmd {
	return func() tea.Msg {
		var notes []note.Note
		switch {
		case m.searchQuery != "":
			notes = m.deps.Notes.Search(m.searchQuery)
		case m.showArchived:
			notes = m.deps.Notes.Archived()
		default:
			notes = m.deps.Notes.Unarchived()
		}
		// Presentation ordering: most recently edited first.
		sort.Slice(notes, func(i, j int) bool {
			return notes[i].LastEdited.After(notes[j].LastEdited)
		})
		return notesLoadedMsg(notes)
	}
}

func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		return categoriesLoadedMsg(m.deps.Categories.WithCounts())
	}
}

// attachLocation asks the location provider for coordinates, annotates them
// with city and country, and patches the note. Every failure is silent:
// location is never required for a note to exist.
func (m Model) attachLocation(noteID string) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), geo.RequestTimeout)
		defer cancel()

		loc, err := deps.Location.RequestLocation(ctx)
		if err != nil || loc == nil {
			return nil
		}
		deps.Geocoder.Annotate(ctx, loc)
		if _, err := deps.Notes.Update(noteID, note.Patch{Location: loc}); err != nil {
			return nil
		}
		return locationSavedMsg{noteID: noteID}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(max(20, m.width/2))
		m.textarea.SetHeight(max(5, m.height-12))
		return m, nil

	case notesLoadedMsg:
		m.notes = msg
		if m.cursor >= len(m.notes) {
			m.cursor = max(0, len(m.notes)-1)
		}
		return m, nil

	case categoriesLoadedMsg:
		m.categories = msg
		if m.catCursor >= len(m.categories) {
			m.catCursor = max(0, len(m.categories)-1)
		}
		return m, nil

	case statusMsg:
		m.status = string(msg)
		m.errText = ""
		return m, nil

	case errMsg:
		if msg != nil {
			m.errText = msg.Error()
		}
		return m, nil

	case locationSavedMsg:
		return m, m.loadNotes()

	case importDoneMsg:
		t := i18n.T()
		m.status = fmt.Sprintf(t.ImportResult, msg.result.Imported, msg.result.Skipped)
		if n := len(msg.result.Errors); n > 0 {
			m.errText = fmt.Sprintf(t.ImportRejected, n) + ": " + msg.result.Errors[0]
		} else {
			m.errText = ""
		}
		return m, m.loadNotes()

	case tickMsg:
		var cmd tea.Cmd
		if m.mode == ModeNewNote {
			cmd = m.autosaveDraft()
		}
		return m, tea.Batch(cmd, m.tickCmd())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeAuth:
		return m.updateAuth(msg)
	case ModeNormal:
		return m.updateNormal(msg)
	case ModeEditing, ModeNewNote:
		return m.updateEditor(msg)
	case ModeSearch:
		return m.updateSearch(msg)
	case ModeConfirmDelete:
		return m.updateConfirmDelete(msg)
	case ModeCategory:
		return m.updateCategory(msg)
	case ModeImport:
		return m.updateImport(msg)
	case ModeSettings:
		return m.updateSettings(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
			m.mode = m.prevMode
		}
		return m, nil
	}
	return m, nil
}

// --- auth ---

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Switch):
		if m.screen == authLogin {
			m.screen = authSignup
		} else {
			m.screen = authLogin
		}
		m.fieldErrors = map[string]string{}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.authFocus == 0 {
			m.authFocus = 1
			m.emailInput.Blur()
			return m, m.passwordInput.Focus()
		}
		m.authFocus = 0
		m.passwordInput.Blur()
		return m, m.emailInput.Focus()

	case key.Matches(msg, m.keys.Enter):
		return m.submitAuth()
	}

	var cmd tea.Cmd
	if m.authFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	email := m.emailInput.Value()
	password := m.passwordInput.Value()

	var err error
	if m.screen == authLogin {
		_, err = m.deps.Auth.Login(email, password)
	} else {
		_, err = m.deps.Auth.Signup(email, password)
	}
	if err != nil {
		// Structured field routing: no message sniffing.
		m.fieldErrors = map[string]string{apperror.FieldOf(err): err.Error()}
		return m, nil
	}

	m.fieldErrors = map[string]string{}
	m.passwordInput.SetValue("")
	m.mode = ModeNormal
	return m, tea.Batch(m.loadNotes(), m.loadCategories())
}

// --- list ---

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.startCreate()

	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Enter):
		return m.startEdit()

	case key.Matches(msg, m.keys.Delete):
		if n := m.selected(); n != nil {
			m.deleteID = n.ID
			m.deleteTitle = n.Title
			m.mode = ModeConfirmDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.Archive):
		return m.toggleArchive()

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.searchQuery)
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Export):
		return m.exportNotes()

	case key.Matches(msg, m.keys.Import):
		m.mode = ModeImport
		m.importInput.SetValue("")
		return m, m.importInput.Focus()

	case key.Matches(msg, m.keys.Settings):
		m.mode = ModeSettings
		m.settingsCursor = 0
		m.pwEditing = false
		m.errText = ""
		return m, nil

	case key.Matches(msg, m.keys.Share):
		return m.shareSelected()

	case key.Matches(msg, m.keys.Category):
		if m.selected() != nil {
			m.mode = ModeCategory
			m.catCreating = false
		}
		return m, m.loadCategories()

	case key.Matches(msg, m.keys.Logout):
		m.deps.Auth.Logout()
		m.mode = ModeAuth
		m.screen = authLogin
		m.emailInput.SetValue("")
		m.passwordInput.SetValue("")
		m.authFocus = 0
		m.emailInput.Focus()
		m.passwordInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.prevMode = m.mode
		m.mode = ModeHelp
		return m, nil

	case msg.String() == "A":
		m.showArchived = !m.showArchived
		m.cursor = 0
		return m, m.loadNotes()

	case key.Matches(msg, m.keys.Escape):
		if m.searchQuery != "" {
			m.searchQuery = ""
			return m, m.loadNotes()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) selected() *note.Note {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return nil
	}
	n := m.notes[m.cursor]
	return &n
}

func (m *Model) setEditorContent(title, content string, tags []string) {
	m.titleInput.SetValue(title)
	m.textarea.SetValue(content)
	m.tagsInput.SetValue(strings.Join(tags, ", "))
	m.focus = focusTitle
	m.titleInput.Focus()
	m.textarea.Blur()
	m.tagsInput.Blur()
}

func (m Model) startCreate() (tea.Model, tea.Cmd) {
	m.editingID = ""
	m.mode = ModeNewNote
	m.status = ""
	m.errText = ""

	// A pending draft survives screen changes; restore it into the editor.
	if d, ok := m.deps.Drafts.Load(); ok {
		m.setEditorContent(d.Title, d.Content, d.Tags)
		m.status = i18n.T().DraftRestored
	} else {
		m.setEditorContent("", "", nil)
	}
	return m, textinput.Blink
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	n := m.selected()
	if n == nil {
		return m, nil
	}
	m.editingID = n.ID
	m.mode = ModeEditing
	m.status = ""
	m.errText = ""
	m.setEditorContent(n.Title, n.Content, n.Tags)
	return m, textinput.Blink
}

func (m Model) toggleArchive() (tea.Model, tea.Cmd) {
	n := m.selected()
	if n == nil {
		return m, nil
	}
	archived := !n.IsArchived
	if _, err := m.deps.Notes.Update(n.ID, note.Patch{IsArchived: &archived}); err != nil {
		return m, func() tea.Msg { return errMsg(err) }
	}
	return m, m.loadNotes()
}

func (m Model) exportNotes() (tea.Model, tea.Cmd) {
	deps := m.deps
	return m, func() tea.Msg {
		path, err := deps.Transfer.WriteFile(deps.Config.ExportDir)
		if err != nil {
			return errMsg(err)
		}
		return statusMsg(i18n.T().Exported + " " + path)
	}
}

func (m Model) shareSelected() (tea.Model, tea.Cmd) {
	n := m.selected()
	if n == nil {
		return m, nil
	}
	deps := m.deps
	id := n.ID
	return m, func() tea.Msg {
		locator, err := deps.Share.Locator(id)
		if err != nil {
			return errMsg(err)
		}
		if err := deps.Share.CopyToClipboard(locator); err != nil {
			// Clipboard may be unavailable; the locator itself is still useful.
			return statusMsg(locator)
		}
		return statusMsg(i18n.T().ShareCopied)
	}
}

// --- editor ---

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		if m.mode == ModeNewNote {
			// Keep the draft for later; discard happens on save.
			m.saveDraftNow()
		}
		m.mode = ModeNormal
		return m, m.loadNotes()

	case key.Matches(msg, m.keys.Save):
		return m.saveEditor()

	case key.Matches(msg, m.keys.Tab):
		return m.cycleEditorFocus()
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusContent:
		m.textarea, cmd = m.textarea.Update(msg)
	case focusTags:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	}
	return m, cmd
}

func (m Model) cycleEditorFocus() (tea.Model, tea.Cmd) {
	m.titleInput.Blur()
	m.textarea.Blur()
	m.tagsInput.Blur()

	switch m.focus {
	case focusTitle:
		m.focus = focusContent
		return m, m.textarea.Focus()
	case focusContent:
		m.focus = focusTags
		return m, m.tagsInput.Focus()
	default:
		m.focus = focusTitle
		return m, m.titleInput.Focus()
	}
}

func parseTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (m *Model) saveDraftNow() {
	m.deps.Drafts.Save(draft.Draft{
		Title:   m.titleInput.Value(),
		Content: m.textarea.Value(),
		Tags:    parseTags(m.tagsInput.Value()),
	})
}

func (m Model) autosaveDraft() tea.Cmd {
	d := draft.Draft{
		Title:   m.titleInput.Value(),
		Content: m.textarea.Value(),
		Tags:    parseTags(m.tagsInput.Value()),
	}
	deps := m.deps
	return func() tea.Msg {
		deps.Drafts.Save(d)
		return nil
	}
}

func (m Model) saveEditor() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.errText = i18n.T().TitleRequired
		return m, nil
	}
	content := m.textarea.Value()
	tags := parseTags(m.tagsInput.Value())

	if m.mode == ModeNewNote {
		n := note.New(title, content, tags)
		if err := m.deps.Notes.Add(n); err != nil {
			return m, func() tea.Msg { return errMsg(err) }
		}
		m.deps.Drafts.Clear()
		m.mode = ModeNormal
		m.status = i18n.T().Saved
		return m, tea.Batch(m.loadNotes(), m.attachLocation(n.ID))
	}

	_, err := m.deps.Notes.Update(m.editingID, note.Patch{
		Title:   &title,
		Content: &content,
		Tags:    tags,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			m.mode = ModeNormal
		}
		return m, func() tea.Msg { return errMsg(err) }
	}
	m.mode = ModeNormal
	m.status = i18n.T().Saved
	return m, m.loadNotes()
}

// --- search ---

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.searchQuery = strings.TrimSpace(m.searchInput.Value())
		m.mode = ModeNormal
		m.cursor = 0
		return m, m.loadNotes()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// --- delete confirm ---

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		id := m.deleteID
		m.deleteID = ""
		m.mode = ModeNormal
		if _, err := m.deps.Notes.Delete(id); err != nil {
			return m, func() tea.Msg { return errMsg(err) }
		}
		return m, m.loadNotes()

	case key.Matches(msg, m.keys.Escape):
		m.deleteID = ""
		m.mode = ModeNormal
		return m, nil
	}
	return m, nil
}

// --- category picker ---

func (m Model) updateCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.catCreating {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.catCreating = false
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			_, err := m.deps.Categories.Create(m.catInput.Value(), "", "")
			if err != nil {
				return m, func() tea.Msg { return errMsg(err) }
			}
			m.catCreating = false
			m.catInput.SetValue("")
			m.errText = ""
			return m, m.loadCategories()
		}
		var cmd tea.Cmd
		m.catInput, cmd = m.catInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.catCursor > 0 {
			m.catCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.catCursor < len(m.categories)-1 {
			m.catCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.catCreating = true
		m.catInput.SetValue("")
		return m, m.catInput.Focus()

	case msg.String() == "u":
		return m.assignCategory("")

	case key.Matches(msg, m.keys.Delete):
		if m.catCursor < len(m.categories) {
			id := m.categories[m.catCursor].ID
			if err := m.deps.Categories.Delete(id); err != nil {
				return m, func() tea.Msg { return errMsg(err) }
			}
			return m, tea.Batch(m.loadCategories(), m.loadNotes())
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.catCursor < len(m.categories) {
			return m.assignCategory(m.categories[m.catCursor].ID)
		}
		return m, nil
	}
	return m, nil
}

// --- import dialog ---

func (m Model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		m.importReplace = !m.importReplace
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		path := strings.TrimSpace(m.importInput.Value())
		if path == "" {
			return m, nil
		}
		m.mode = ModeNormal
		return m, m.importFile(path)
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

// importFile reads an export file and merges it into the collection. Record
// rejections ride along in the result; only unreadable input is an error.
func (m Model) importFile(path string) tea.Cmd {
	deps := m.deps
	opts := transfer.DefaultOptions()
	if m.importReplace {
		opts = transfer.Options{MergeStrategy: transfer.MergeReplace}
	}
	return func() tea.Msg {
		raw, err := os.ReadFile(path)
		if err != nil {
			return errMsg(fmt.Errorf("failed to read import file: %w", err))
		}
		res, err := deps.Transfer.ImportRaw(raw, opts)
		if err != nil {
			return errMsg(err)
		}
		return importDoneMsg{result: res}
	}
}

// --- settings ---

const (
	settingColorTheme = iota
	settingFontTheme
	settingPassword
	settingCount
)

func nextColorTheme(current string) string {
	switch current {
	case "light":
		return "dark"
	case "dark":
		return "system"
	default:
		return "light"
	}
}

func nextFontTheme(current string) string {
	switch current {
	case "sans-serif":
		return "serif"
	case "serif":
		return "monospace"
	default:
		return "sans-serif"
	}
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pwEditing {
		return m.updatePasswordForm(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < settingCount-1 {
			m.settingsCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		switch m.settingsCursor {
		case settingColorTheme:
			return m.cycleColorTheme()
		case settingFontTheme:
			return m.cycleFontTheme()
		case settingPassword:
			m.pwEditing = true
			m.pwFocus = 0
			m.errText = ""
			m.currentPwInput.SetValue("")
			m.newPwInput.SetValue("")
			m.newPwInput.Blur()
			return m, m.currentPwInput.Focus()
		}
	}
	return m, nil
}

func (m Model) cycleColorTheme() (tea.Model, tea.Cmd) {
	next := nextColorTheme(m.deps.Prefs.ColorTheme())
	if err := m.deps.Prefs.Save(map[string]any{prefs.KeyColorTheme: next}).Err(); err != nil {
		return m, func() tea.Msg { return errMsg(err) }
	}
	m.styles = NewStyles(ThemeFor(next))
	return m, nil
}

func (m Model) cycleFontTheme() (tea.Model, tea.Cmd) {
	next := nextFontTheme(m.deps.Prefs.FontTheme())
	if err := m.deps.Prefs.Save(map[string]any{prefs.KeyFontTheme: next}).Err(); err != nil {
		return m, func() tea.Msg { return errMsg(err) }
	}
	return m, nil
}

func (m Model) updatePasswordForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.pwEditing = false
		m.errText = ""
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.pwFocus == 0 {
			m.pwFocus = 1
			m.currentPwInput.Blur()
			return m, m.newPwInput.Focus()
		}
		m.pwFocus = 0
		m.newPwInput.Blur()
		return m, m.currentPwInput.Focus()

	case key.Matches(msg, m.keys.Enter):
		return m.submitPasswordChange()
	}

	var cmd tea.Cmd
	if m.pwFocus == 0 {
		m.currentPwInput, cmd = m.currentPwInput.Update(msg)
	} else {
		m.newPwInput, cmd = m.newPwInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitPasswordChange() (tea.Model, tea.Cmd) {
	err := m.deps.Auth.ChangePassword(m.currentPwInput.Value(), m.newPwInput.Value())
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.pwEditing = false
	m.currentPwInput.SetValue("")
	m.newPwInput.SetValue("")
	m.errText = ""
	m.status = i18n.T().PasswordChanged
	return m, nil
}

func (m Model) assignCategory(categoryID string) (tea.Model, tea.Cmd) {
	n := m.selected()
	if n == nil {
		m.mode = ModeNormal
		return m, nil
	}
	if _, err := m.deps.Notes.Update(n.ID, note.Patch{CategoryID: &categoryID}); err != nil {
		return m, func() tea.Msg { return errMsg(err) }
	}
	m.mode = ModeNormal
	cmds := []tea.Cmd{m.loadNotes(), m.loadCategories()}
	return m, tea.Batch(cmds...)
}
