package driving

import (
	"context"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// ActionService performs desktop side effects for external actors.
// This is used by TUI, CLI, and MCP adapters.
type ActionService interface {
	// Copy places text on the clipboard.
	Copy(text string) error

	// Open opens url in the default browser after the allow-list check.
	Open(url string) error
}

// PreviewService inspects a single image.
type PreviewService interface {
	Inspect(ctx context.Context, url string) (domain.ImageInfo, error)
}
