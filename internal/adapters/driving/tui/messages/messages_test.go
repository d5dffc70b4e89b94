package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPane_String(t *testing.T) {
	tests := []struct {
		pane Pane
		want string
	}{
		{PaneLink, "link"},
		{PaneList, "list"},
		{PaneTitle, "title"},
		{Pane(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pane.String())
		})
	}
}

func TestPane_ZeroValueIsLink(t *testing.T) {
	var p Pane
	assert.Equal(t, PaneLink, p)
}
