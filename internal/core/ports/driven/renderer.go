package driven

import "github.com/custodia-labs/gittable/internal/core/domain"

// Renderer turns the curated list into copyable output.
// Implementations are pure functions of their inputs.
type Renderer interface {
	// Name returns the output format name.
	Name() string

	// Render produces output for urls in order.
	Render(urls []string, cfg domain.RenderConfig) string
}

// RendererRegistry selects a renderer by format.
type RendererRegistry interface {
	// Get returns the renderer for format, or domain.ErrUnsupportedFormat.
	Get(format domain.OutputFormat) (Renderer, error)

	// Formats returns the registered format names, sorted.
	Formats() []domain.OutputFormat
}
