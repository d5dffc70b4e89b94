// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gittable/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady       State = "ready"
	StateScanning    State = "scanning"
	StateDownloading State = "downloading"
	StateNotice      State = "notice"
	StateError       State = "error"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	note    string
	pane    messages.Pane
	count   int
	columns int
	format  string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		pane:   messages.PaneLink,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the optional note line and the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := max(1, s.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	bar := s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)

	if s.note == "" {
		return bar
	}
	return s.styles.Warning.Render(s.note) + "\n" + bar
}

// renderLeft renders the state, message and layout summary.
func (s *Bar) renderLeft() string {
	var text string
	switch s.state {
	case StateScanning:
		text = s.styles.Muted.Render("Scanning...")
	case StateDownloading:
		text = s.styles.Normal.Render(s.message)
	case StateError:
		if s.message != "" {
			text = s.styles.Error.Render("Error: " + s.message)
		} else {
			text = s.styles.Error.Render("Error")
		}
	case StateNotice:
		text = s.styles.Success.Render(s.message)
	case StateReady:
		text = s.styles.Muted.Render("Ready")
	}

	if s.count > 0 {
		layout := fmt.Sprintf("%d images · %d col · %s", s.count, s.columns, s.format)
		text += s.styles.Muted.Render("  " + layout)
	}
	return text
}

// renderRight renders keybinding hints for the focused pane.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.pane {
	case messages.PaneList:
		bindings = s.keymap.ListHelp()
	case messages.PaneTitle:
		bindings = s.keymap.TitleHelp()
	case messages.PaneLink:
		bindings = s.keymap.LinkHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the state message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Notify shows a transient notice.
func (s *Bar) Notify(message string) {
	s.state = StateNotice
	s.message = message
}

// Fail shows an error, followed by its remediation hint when it has one.
func (s *Bar) Fail(err error) {
	s.state = StateError
	s.message = err.Error()
	if hint := domain.Hint(err); hint != "" {
		s.message += " (" + hint + ")"
	}
}

// SetNote sets the persistent warning line shown above the bar.
func (s *Bar) SetNote(note string) {
	s.note = note
}

// Note returns the warning line.
func (s *Bar) Note() string {
	return s.note
}

// SetPane selects which keybinding hints are shown.
func (s *Bar) SetPane(p messages.Pane) {
	s.pane = p
}

// SetLayout sets the list size, column count and output format summary.
func (s *Bar) SetLayout(count, columns int, format string) {
	s.count = count
	s.columns = columns
	s.format = format
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
