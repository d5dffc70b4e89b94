package domain

import "strings"

// Column bounds for table output.
const (
	MinColumns = 1
	MaxColumns = 5
)

// RenderConfig controls table layout.
type RenderConfig struct {
	// Columns is the number of cells per row, clamped to [MinColumns, MaxColumns].
	Columns int

	// Title is rendered as a bold header row when non-blank.
	Title string
}

// Clamp returns a copy with Columns forced into range and Title trimmed.
func (c RenderConfig) Clamp() RenderConfig {
	c.Columns = ClampColumns(c.Columns)
	c.Title = strings.TrimSpace(c.Title)
	return c
}

// HasTitle reports whether a header row should be emitted.
func (c RenderConfig) HasTitle() bool {
	return strings.TrimSpace(c.Title) != ""
}

// ClampColumns forces n into [MinColumns, MaxColumns].
func ClampColumns(n int) int {
	return max(MinColumns, min(n, MaxColumns))
}

// OutputFormat names a renderer.
type OutputFormat string

// Known output formats.
const (
	// FormatPreview is the HTML table with placeholder thumbnails.
	FormatPreview OutputFormat = "preview"

	// FormatHTML is the HTML gallery table with real images.
	FormatHTML OutputFormat = "html"

	// FormatLinks is the newline-joined URL list.
	FormatLinks OutputFormat = "links"
)

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}
