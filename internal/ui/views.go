package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrossetti/notekeep/internal/i18n"
	"github.com/mrossetti/notekeep/internal/richtext"
)

func (m Model) View() string {
	switch m.mode {
	case ModeAuth:
		return m.viewAuth()
	case ModeEditing, ModeNewNote:
		return m.viewEditor()
	case ModeSearch:
		return m.viewSearch()
	case ModeConfirmDelete:
		return m.viewConfirmDelete()
	case ModeCategory:
		return m.viewCategory()
	case ModeImport:
		return m.viewImport()
	case ModeSettings:
		return m.viewSettings()
	case ModeHelp:
		return m.viewHelp()
	default:
		return m.viewList()
	}
}

func (m Model) viewAuth() string {
	t := i18n.T()

	title := t.LoginTitle
	action := t.LoginAction
	switchHint := t.SwitchToSignup
	if m.screen == authSignup {
		title = t.SignupTitle
		action = t.SignupAction
		switchHint = t.SwitchToLogin
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render(t.EmailLabel) + "\n")
	b.WriteString(m.emailInput.View() + "\n")
	if msg, ok := m.fieldErrors["email"]; ok {
		b.WriteString(m.styles.Error.Render(msg) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render(t.PasswordLabel) + "\n")
	b.WriteString(m.passwordInput.View() + "\n")
	if msg, ok := m.fieldErrors["password"]; ok {
		b.WriteString(m.styles.Error.Render(msg) + "\n")
	}
	if msg, ok := m.fieldErrors["general"]; ok {
		b.WriteString("\n" + m.styles.Error.Render(msg) + "\n")
	}

	b.WriteString("\n" + m.styles.Muted.Render(action))
	b.WriteString("\n" + m.styles.KeyHint.Render(switchHint))

	return m.center(m.styles.Dialog.Render(b.String()))
}

func (m Model) viewList() string {
	t := i18n.T()

	header := t.Notes
	if m.showArchived {
		header = t.Archived
	}
	if m.searchQuery != "" {
		header += " · " + t.Search + ": " + m.searchQuery
	}

	var list strings.Builder
	if len(m.notes) == 0 {
		list.WriteString(m.styles.Muted.Render(t.NoNotes))
	}
	for i, n := range m.notes {
		line := n.Title
		if n.IsArchived {
			line += " [" + t.Archived + "]"
		}
		if i == m.cursor {
			list.WriteString(m.styles.SelectedListItem.Render("> " + line))
		} else {
			list.WriteString(m.styles.ListItem.Render("  " + line))
		}
		list.WriteString("\n")
	}

	left := m.styles.Panel.Render(list.String())
	right := m.styles.Panel.Render(m.viewDetail())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(header),
		body,
		m.statusBar(),
	)
}

func (m Model) viewDetail() string {
	t := i18n.T()
	n := m.selected()
	if n == nil {
		return m.styles.Muted.Render(t.NoNoteSelected)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(n.Title) + "\n")
	// Imported notes may carry markup; the terminal renders plain text only.
	b.WriteString(richtext.Text(n.Content) + "\n\n")

	if len(n.Tags) > 0 {
		b.WriteString(m.styles.Label.Render(t.Tags+": "))
		for _, tag := range n.Tags {
			b.WriteString(m.styles.Tag.Render("#" + tag))
		}
		b.WriteString("\n")
	}
	if name := m.categoryName(n.CategoryID); name != "" {
		b.WriteString(m.styles.Label.Render(t.Category+": ") + name + "\n")
	}
	if n.Location != nil {
		loc := fmt.Sprintf("%.4f, %.4f", n.Location.Coordinates.Lat, n.Location.Coordinates.Lng)
		if n.Location.City != "" {
			loc = n.Location.City
			if n.Location.Country != "" {
				loc += ", " + n.Location.Country
			}
		}
		b.WriteString(m.styles.Label.Render(t.Location+": ") + loc + "\n")
	}
	b.WriteString(m.styles.Muted.Render(
		t.CreatedAt + ": " + n.CreatedAt.Format("2006-01-02 15:04") + "  " +
			t.ModifiedAt + ": " + n.LastEdited.Format("2006-01-02 15:04")))

	return b.String()
}

func (m Model) categoryName(id string) string {
	if id == "" {
		return ""
	}
	for _, c := range m.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return i18n.T().Uncategorized
}

func (m Model) viewEditor() string {
	t := i18n.T()

	header := t.NewNote
	if m.mode == ModeEditing {
		header = t.KeyEdit
	}

	panel := func(focused bool, content string) string {
		if focused {
			return m.styles.ActivePanel.Render(content)
		}
		return m.styles.Panel.Render(content)
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(header) + "\n")
	b.WriteString(panel(m.focus == focusTitle, m.titleInput.View()) + "\n")
	b.WriteString(panel(m.focus == focusContent, m.textarea.View()) + "\n")
	b.WriteString(panel(m.focus == focusTags, m.tagsInput.View()) + "\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) viewSearch() string {
	t := i18n.T()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Search) + "\n\n")
	b.WriteString(m.searchInput.View() + "\n\n")
	b.WriteString(m.styles.KeyHint.Render(t.EnterConfirm + "  " + t.EscCancel))
	return m.center(m.styles.Dialog.Render(b.String()))
}

func (m Model) viewConfirmDelete() string {
	t := i18n.T()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.DeleteConfirm) + "\n\n")
	b.WriteString(m.styles.Selected.Render(m.deleteTitle) + "\n\n")
	b.WriteString(m.styles.KeyHint.Render(t.EnterConfirm + "  " + t.EscCancel))
	return m.center(m.styles.Dialog.Render(b.String()))
}

func (m Model) viewCategory() string {
	t := i18n.T()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Category) + "\n\n")

	if m.catCreating {
		b.WriteString(m.catInput.View() + "\n")
		if m.errText != "" {
			b.WriteString(m.styles.Error.Render(m.errText) + "\n")
		}
		b.WriteString("\n" + m.styles.KeyHint.Render(t.EnterConfirm+"  "+t.EscCancel))
		return m.center(m.styles.Dialog.Render(b.String()))
	}

	for i, c := range m.categories {
		line := fmt.Sprintf("%s (%d)", c.Name, c.NoteCount)
		if c.Icon != "" {
			line = c.Icon + " " + line
		}
		if i == m.catCursor {
			b.WriteString(m.styles.SelectedListItem.Render("> " + line))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(m.categories) == 0 {
		b.WriteString(m.styles.Muted.Render(t.Uncategorized) + "\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errText) + "\n")
	}
	b.WriteString("\n" + m.styles.KeyHint.Render(
		"Enter: "+t.KeyCategory+"  Ctrl+N: "+t.KeyNew+"  u: "+t.Uncategorized+"  d: "+t.KeyDelete+"  "+t.EscCancel))

	return m.center(m.styles.Dialog.Render(b.String()))
}

func (m Model) viewImport() string {
	t := i18n.T()

	strategy := t.DuplicatesSkip
	if m.importReplace {
		strategy = t.DuplicatesReplace
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.ImportTitle) + "\n\n")
	b.WriteString(m.importInput.View() + "\n\n")
	b.WriteString(m.styles.Label.Render(strategy) + "\n")
	if m.errText != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errText) + "\n")
	}
	b.WriteString("\n" + m.styles.KeyHint.Render(t.ToggleDuplicates+"  "+t.EnterConfirm+"  "+t.EscCancel))
	return m.center(m.styles.Dialog.Render(b.String()))
}

func (m Model) viewSettings() string {
	t := i18n.T()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Settings) + "\n\n")

	if m.pwEditing {
		b.WriteString(m.styles.Label.Render(t.CurrentPassword) + "\n")
		b.WriteString(m.currentPwInput.View() + "\n\n")
		b.WriteString(m.styles.Label.Render(t.NewPassword) + "\n")
		b.WriteString(m.newPwInput.View() + "\n")
		if m.errText != "" {
			b.WriteString("\n" + m.styles.Error.Render(m.errText) + "\n")
		}
		b.WriteString("\n" + m.styles.KeyHint.Render(t.EnterConfirm+"  "+t.EscCancel))
		return m.center(m.styles.Dialog.Render(b.String()))
	}

	rows := []string{
		t.ColorTheme + ": " + m.deps.Prefs.ColorTheme(),
		t.FontTheme + ": " + m.deps.Prefs.FontTheme(),
		t.ChangePassword,
	}
	for i, row := range rows {
		if i == m.settingsCursor {
			b.WriteString(m.styles.SelectedListItem.Render("> " + row))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + row))
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errText) + "\n")
	}
	b.WriteString("\n" + m.styles.KeyHint.Render(t.EnterConfirm+"  "+t.EscCancel))
	return m.center(m.styles.Dialog.Render(b.String()))
}

func (m Model) viewHelp() string {
	t := i18n.T()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Help) + "\n\n")
	for _, row := range m.keys.FullHelp() {
		for _, binding := range row {
			if binding.Help().Desc == "" {
				continue
			}
			b.WriteString(fmt.Sprintf("%-12s %s\n",
				m.styles.Label.Render(binding.Help().Key),
				binding.Help().Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.KeyHint.Render(t.EscCancel))
	return m.center(m.styles.Dialog.Render(b.String()))
}

func (m Model) statusBar() string {
	t := i18n.T()

	parts := make([]string, 0, 3)
	if m.errText != "" {
		parts = append(parts, m.styles.Error.Render(t.Error+": "+m.errText))
	} else if m.status != "" {
		parts = append(parts, m.status)
	}
	if u := m.deps.Auth.CurrentUser(); u != nil {
		parts = append(parts, t.LoggedInAs+" "+u.Email)
	}

	var hints []string
	for _, binding := range m.keys.ShortHelp() {
		hints = append(hints, binding.Help().Key+" "+binding.Help().Desc)
	}
	parts = append(parts, m.styles.KeyHint.Render(strings.Join(hints, " · ")))

	return m.styles.StatusBar.Render(strings.Join(parts, "  |  "))
}

func (m Model) center(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
