package driving

import "github.com/custodia-labs/gittable/internal/core/domain"

// RenderService produces copyable output for a list of URLs.
type RenderService interface {
	Render(format domain.OutputFormat, urls []string, cfg domain.RenderConfig) (string, error)
	Formats() []domain.OutputFormat
}
