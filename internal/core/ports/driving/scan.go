package driving

import (
	"context"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// ScanService enumerates the images reachable from a GitHub link.
type ScanService interface {
	// Enumerate parses link, resolves the default branch when needed and
	// returns sorted raw-content URLs. An empty token means anonymous access.
	Enumerate(ctx context.Context, link, token string) (domain.ScanResult, error)
}
