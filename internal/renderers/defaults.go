package renderers

import (
	"github.com/custodia-labs/gittable/internal/renderers/links"
	"github.com/custodia-labs/gittable/internal/renderers/table"
)

// RegisterDefaults registers the built-in formats: preview, html and links.
func RegisterDefaults(r *Registry) {
	r.Register(table.NewPreview())
	r.Register(table.NewGallery())
	r.Register(links.New())
}

// Defaults returns a registry with the built-in formats.
func Defaults() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
