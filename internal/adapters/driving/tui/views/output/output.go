// Package output provides the rendered-output pane for the TUI.
package output

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gittable/internal/core/domain"
)

// View shows the latest rendering of the image list and scrolls through it.
type View struct {
	styles *styles.Styles

	format       domain.OutputFormat
	content      string
	lines        []string
	scrollOffset int
	err          error
	width        int
	height       int
}

// NewView creates a new output view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		format: domain.FormatHTML,
		width:  40,
		height: 10,
	}
}

// SetContent replaces the rendered output. The scroll position is kept
// when possible so re-renders after small edits do not jump.
func (v *View) SetContent(format domain.OutputFormat, content string) {
	v.format = format
	v.content = content
	v.err = nil
	v.wrapContent()
	v.scrollOffset = min(v.scrollOffset, v.maxScrollOffset())
}

// SetError shows a rendering failure instead of content.
func (v *View) SetError(err error) {
	v.err = err
}

// ScrollUp moves one page up.
func (v *View) ScrollUp() {
	v.scrollOffset = max(0, v.scrollOffset-v.visibleLines())
}

// ScrollDown moves one page down.
func (v *View) ScrollDown() {
	v.scrollOffset = min(v.maxScrollOffset(), v.scrollOffset+v.visibleLines())
}

// wrapContent hard-wraps content to the pane width.
func (v *View) wrapContent() {
	if v.content == "" {
		v.lines = nil
		return
	}

	width := max(10, v.width-4)
	rawLines := strings.Split(v.content, "\n")
	v.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		r := []rune(line)
		for len(r) > width {
			v.lines = append(v.lines, string(r[:width]))
			r = r[width:]
		}
		v.lines = append(v.lines, string(r))
	}
}

// visibleLines returns the number of content lines that fit.
func (v *View) visibleLines() int {
	// header, blank line and scroll indicator
	return max(1, v.height-3)
}

func (v *View) maxScrollOffset() int {
	return max(0, len(v.lines)-v.visibleLines())
}

// View renders the pane body.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Output (%s)", v.format)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		return b.String()
	}

	if len(v.lines) == 0 {
		b.WriteString(v.styles.Muted.Render("(nothing to render)"))
		return b.String()
	}

	visible := v.visibleLines()
	end := min(len(v.lines), v.scrollOffset+visible)
	for i := v.scrollOffset; i < end; i++ {
		b.WriteString(v.styles.Normal.Render(v.lines[i]))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(v.lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Line %d-%d of %d",
			v.scrollOffset+1, end, len(v.lines))))
	}

	return b.String()
}

// SetDimensions sets the pane size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.wrapContent()
	v.scrollOffset = min(v.scrollOffset, v.maxScrollOffset())
}

// Format returns the format of the shown output.
func (v *View) Format() domain.OutputFormat {
	return v.format
}

// Content returns the unwrapped output.
func (v *View) Content() string {
	return v.content
}

// Err returns the last rendering error.
func (v *View) Err() error {
	return v.err
}
