// Package renderers turns the curated image list into copyable output.
package renderers

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.RendererRegistry = (*Registry)(nil)

// Registry maps output formats to renderers.
type Registry struct {
	renderers map[domain.OutputFormat]driven.Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[domain.OutputFormat]driven.Renderer),
	}
}

// Register adds a renderer under its Name(). A later registration replaces an earlier one.
func (r *Registry) Register(renderer driven.Renderer) {
	r.renderers[domain.OutputFormat(renderer.Name())] = renderer
}

// Get returns the renderer for format.
func (r *Registry) Get(format domain.OutputFormat) (driven.Renderer, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return renderer, nil
}

// Has returns true if format is registered.
func (r *Registry) Has(format domain.OutputFormat) bool {
	_, ok := r.renderers[format]
	return ok
}

// Formats returns all registered formats, sorted.
func (r *Registry) Formats() []domain.OutputFormat {
	formats := make([]domain.OutputFormat, 0, len(r.renderers))
	for f := range r.renderers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
