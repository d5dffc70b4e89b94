package driving

import (
	"context"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// DownloadService saves images under the storage root.
type DownloadService interface {
	// DownloadOne saves url into destDir and returns the storage-relative path.
	DownloadOne(ctx context.Context, url, destDir string) (string, error)

	// DownloadAll saves urls sequentially, continuing past failures.
	// The error is non-nil only when destDir cannot be prepared.
	DownloadAll(
		ctx context.Context, urls []string, destDir string, progress func(domain.DownloadProgress),
	) (domain.DownloadSummary, error)
}
