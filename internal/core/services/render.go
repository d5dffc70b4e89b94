package services

import (
	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
)

// Ensure RenderService implements the interface.
var _ driving.RenderService = (*RenderService)(nil)

// RenderService renders an arbitrary URL list without a curation session.
type RenderService struct {
	renderers driven.RendererRegistry
}

// NewRenderService creates a new render service.
func NewRenderService(renderers driven.RendererRegistry) *RenderService {
	return &RenderService{renderers: renderers}
}

// Render renders urls in format. The layout is clamped first.
func (s *RenderService) Render(format domain.OutputFormat, urls []string, cfg domain.RenderConfig) (string, error) {
	renderer, err := s.renderers.Get(format)
	if err != nil {
		return "", err
	}
	return renderer.Render(urls, cfg.Clamp()), nil
}

// Formats lists the registered output formats.
func (s *RenderService) Formats() []domain.OutputFormat {
	return s.renderers.Formats()
}
