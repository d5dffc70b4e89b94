package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField_NilStyles(t *testing.T) {
	f := NewField(nil, "Label: ", "placeholder", 10)

	require.NotNil(t, f)
	assert.NotNil(t, f.styles)
	assert.False(t, f.Focused())
	assert.Equal(t, 50, f.Width())
}

func TestField_TypingRequiresFocus(t *testing.T) {
	f := NewLinkField(nil)

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	assert.Equal(t, "", f.Value())

	f.Focus()
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	assert.Equal(t, "abc", f.Value())
}

func TestField_CharLimit(t *testing.T) {
	f := NewField(nil, "", "", 3)
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abcdef")})

	assert.Equal(t, "abc", f.Value())
}

func TestField_SetValueAndReset(t *testing.T) {
	f := NewTitleField(nil)

	f.SetValue("Screenshots")
	assert.Equal(t, "Screenshots", f.Value())

	f.Reset()
	assert.Equal(t, "", f.Value())
}

func TestField_FocusBlur(t *testing.T) {
	f := NewLinkField(nil)

	f.Focus()
	assert.True(t, f.Focused())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_SetWidth(t *testing.T) {
	f := NewLinkField(nil)

	f.SetWidth(100)
	assert.Equal(t, 100, f.Width())
	assert.Equal(t, 100-len("Link: ")-6, f.textinput.Width)

	f.SetWidth(5)
	assert.Equal(t, 20, f.textinput.Width)
}

func TestField_ViewIncludesLabel(t *testing.T) {
	f := NewTitleField(nil)

	assert.Contains(t, f.View(), "Title:")
}

func TestField_Init(t *testing.T) {
	assert.NotNil(t, NewLinkField(nil).Init())
}
