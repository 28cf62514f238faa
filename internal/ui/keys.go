package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mrossetti/notekeep/internal/i18n"
)

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Edit     key.Binding
	Escape   key.Binding
	Save     key.Binding
	New      key.Binding
	Delete   key.Binding
	Search   key.Binding
	Archive  key.Binding
	Export   key.Binding
	Import   key.Binding
	Share    key.Binding
	Category key.Binding
	Settings key.Binding
	Switch   key.Binding
	Logout   key.Binding
	Tab      key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func NewKeyMap() KeyMap {
	t := i18n.T()
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", t.KeyUp),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", t.KeyDown),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", t.KeyOpen),
		),
		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", t.KeyEdit),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", t.KeyEscape),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", t.KeySave),
		),
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("Ctrl+N", t.KeyNew),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", t.KeyDelete),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("Ctrl+F", t.KeySearch),
		),
		Archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", t.KeyArchive),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("Ctrl+E", t.KeyExport),
		),
		Import: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("Ctrl+O", t.KeyImport),
		),
		Share: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", t.KeyShare),
		),
		Category: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", t.KeyCategory),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("Ctrl+P", t.KeySettings),
		),
		Switch: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", ""),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", t.KeyLogout),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", ""),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("Ctrl+Q", t.KeyQuit),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h", "?"),
			key.WithHelp("Ctrl+H/?", t.KeyHelp),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Edit, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Edit, k.Escape},
		{k.New, k.Delete, k.Save, k.Search, k.Archive},
		{k.Category, k.Share, k.Export, k.Import},
		{k.Settings, k.Logout, k.Help, k.Quit},
	}
}
