// Package links renders the curated list as plain text.
package links

import (
	"strings"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
)

var _ driven.Renderer = Renderer{}

// Renderer joins URLs with newlines. Layout settings are ignored.
type Renderer struct{}

// New returns the link list renderer.
func New() Renderer {
	return Renderer{}
}

// Name returns the output format name.
func (Renderer) Name() string {
	return string(domain.FormatLinks)
}

// Render implements driven.Renderer.
func (Renderer) Render(urls []string, _ domain.RenderConfig) string {
	return Render(urls)
}

// Render returns urls newline-joined in order.
func Render(urls []string) string {
	return strings.Join(urls, "\n")
}
