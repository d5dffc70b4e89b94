package status

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, "", bar.Note())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View_States(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Bar)
		want  string
	}{
		{"ready", func(*Bar) {}, "Ready"},
		{"scanning", func(b *Bar) { b.SetState(StateScanning) }, "Scanning..."},
		{"downloading", func(b *Bar) {
			b.SetState(StateDownloading)
			b.SetMessage("Downloading 2/5: a.png")
		}, "Downloading 2/5: a.png"},
		{"notice", func(b *Bar) { b.Notify("Copied HTML") }, "Copied HTML"},
		{"error", func(b *Bar) { b.Fail(errors.New("boom")) }, "Error: boom"},
		{"bare error", func(b *Bar) { b.SetState(StateError) }, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(160)
			tt.setup(bar)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestStatusBar_View_Layout(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)

	assert.NotContains(t, bar.View(), "images")

	bar.SetLayout(12, 3, "html")
	assert.Contains(t, bar.View(), "12 images · 3 col · html")
}

func TestStatusBar_View_Note(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)
	bar.SetNote("truncated tree")

	view := bar.View()

	assert.Contains(t, view, "truncated tree")

	bar.SetNote("")
	assert.NotContains(t, bar.View(), "truncated tree")
}

func TestStatusBar_View_HintsFollowPane(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)

	assert.Contains(t, bar.View(), "enter: scan")

	bar.SetPane(messages.PaneList)
	view := bar.View()
	assert.Contains(t, view, "x: delete")
	assert.Contains(t, view, "q: quit")

	bar.SetPane(messages.PaneTitle)
	assert.Contains(t, bar.View(), "enter: apply")
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.Fail(errors.New("boom"))
	bar.SetNote("note")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, "note", bar.Note())
}

type tokenError struct{}

func (tokenError) Error() string { return "401 Unauthorized" }
func (tokenError) Hint() string  { return "the configured GitHub token was rejected" }

func TestStatusBar_Fail_AppendsHint(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.Fail(fmt.Errorf("scan: %w", tokenError{}))

	assert.Equal(t, StateError, bar.State())
	assert.Equal(t, "scan: 401 Unauthorized (the configured GitHub token was rejected)", bar.Message())

	bar.Fail(errors.New("boom"))
	assert.Equal(t, "boom", bar.Message())
}

func TestState_Constants(t *testing.T) {
	assert.Equal(t, State("ready"), StateReady)
	assert.Equal(t, State("scanning"), StateScanning)
	assert.Equal(t, State("downloading"), StateDownloading)
	assert.Equal(t, State("notice"), StateNotice)
	assert.Equal(t, State("error"), StateError)
}
