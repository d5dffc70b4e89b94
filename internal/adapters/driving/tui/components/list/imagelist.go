// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gittable/internal/core/domain"
)

// ImageList displays the curated images of a session snapshot.
// Navigation is applied to the session; the component only renders.
type ImageList struct {
	snapshot domain.CurationSnapshot
	styles   *styles.Styles
	width    int
	height   int
}

// NewImageList creates a new image list component.
func NewImageList(s *styles.Styles) *ImageList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ImageList{
		snapshot: domain.CurationSnapshot{Selected: domain.NoSelection},
		styles:   s,
		width:    40,
		height:   10,
	}
}

// Init initialises the image list.
func (l *ImageList) Init() tea.Cmd {
	return nil
}

// SetSnapshot replaces what is shown.
func (l *ImageList) SetSnapshot(snap domain.CurationSnapshot) {
	l.snapshot = snap
}

// Snapshot returns the snapshot being shown.
func (l *ImageList) Snapshot() domain.CurationSnapshot {
	return l.snapshot
}

// View renders the image list.
func (l *ImageList) View() string {
	items := l.snapshot.Items
	header := l.styles.Subtitle.Render(fmt.Sprintf("Images (%d)", len(items)))

	if len(items) == 0 {
		hint := "Paste a GitHub link and press enter"
		if l.snapshot.Scanning {
			hint = "Scanning..."
		}
		return header + "\n\n" + l.styles.Muted.Render(hint)
	}

	lines := make([]string, 0, l.visibleCount()+2)
	lines = append(lines, header, "")

	start, end := l.window()
	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i))
	}
	if end < len(items) {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("  … %d more", len(items)-end)))
	}

	return strings.Join(lines, "\n")
}

// window returns the [start, end) range that keeps the selection visible.
func (l *ImageList) window() (int, int) {
	n := len(l.snapshot.Items)
	visible := l.visibleCount()

	start := 0
	if sel := l.snapshot.Selected; sel >= visible {
		start = sel - visible + 1
	}
	end := min(start+visible, n)
	return start, end
}

// visibleCount is the number of rows that fit below the header.
func (l *ImageList) visibleCount() int {
	return max(1, l.height-3)
}

// renderRow formats one entry as its position and filename.
func (l *ImageList) renderRow(i int) string {
	url := l.snapshot.Items[i]
	name := DisplayName(url)

	maxName := max(10, l.width-8)
	if lipgloss.Width(name) > maxName {
		name = truncate(name, maxName)
	}

	index := l.styles.Index.Render(fmt.Sprintf("%d.", i+1))
	if i == l.snapshot.Selected {
		return index + " " + l.styles.Selected.Render(" "+name+" ")
	}
	return index + " " + l.styles.Normal.Render(" "+name)
}

// DisplayName returns the repository path of a raw-content URL, or its
// decoded filename when the URL does not have the raw layout.
func DisplayName(url string) string {
	const rawPrefix = "https://raw.githubusercontent.com/"
	if rest, ok := strings.CutPrefix(url, rawPrefix); ok {
		// owner/repo/ref/path...
		parts := strings.SplitN(rest, "/", 4)
		if len(parts) == 4 && parts[3] != "" {
			return parts[3]
		}
	}
	if name := domain.FilenameFromURL(url); name != "" {
		return name
	}
	return url
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "…" + string(r[len(r)-n+1:])
}

// SetDimensions sets the component dimensions.
func (l *ImageList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *ImageList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *ImageList) Height() int {
	return l.height
}

// Count returns the number of entries.
func (l *ImageList) Count() int {
	return len(l.snapshot.Items)
}

// IsEmpty returns whether the list is empty.
func (l *ImageList) IsEmpty() bool {
	return len(l.snapshot.Items) == 0
}
