// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Submit scans the link or applies the title.
	Submit key.Binding

	// Cancel leaves the title editor without applying it.
	Cancel key.Binding

	// Focus toggles between the link input and the list.
	Focus key.Binding

	// Up and Down move the highlight.
	Up   key.Binding
	Down key.Binding

	// MoveUp and MoveDown reorder the highlighted image.
	MoveUp   key.Binding
	MoveDown key.Binding

	Delete key.Binding
	Undo   key.Binding

	// MoreColumns and FewerColumns change the table width.
	MoreColumns  key.Binding
	FewerColumns key.Binding

	Title key.Binding

	// HTML and Links switch the output format.
	HTML  key.Binding
	Links key.Binding

	Copy        key.Binding
	Open        key.Binding
	Download    key.Binding
	DownloadAll key.Binding
	Preview     key.Binding
	Save        key.Binding

	// ScrollUp and ScrollDown page through the output.
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "scan"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "/"),
			key.WithHelp("tab", "link"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("J", "move down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		MoreColumns: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "columns"),
		),
		FewerColumns: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "columns"),
		),
		Title: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "title"),
		),
		HTML: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "html"),
		),
		Links: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "links"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		DownloadAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "download all"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "inspect"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll"),
		),
	}
}

// LinkHelp returns keybindings shown while the link input is focused.
func (k *KeyMap) LinkHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus}
}

// TitleHelp returns keybindings shown while the title is edited.
func (k *KeyMap) TitleHelp() []key.Binding {
	submit := k.Submit
	submit.SetHelp("enter", "apply")
	return []key.Binding{submit, k.Cancel}
}

// ListHelp returns keybindings shown while the list is focused.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.MoveUp, k.Delete, k.Undo, k.Copy, k.DownloadAll, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown, k.Delete, k.Undo},
		{k.MoreColumns, k.FewerColumns, k.Title, k.HTML, k.Links},
		{k.Copy, k.Open, k.Download, k.DownloadAll, k.Preview, k.Save},
		{k.Focus, k.Submit, k.Cancel, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
