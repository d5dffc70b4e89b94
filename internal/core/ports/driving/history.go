package driving

import (
	"context"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// HistoryService records and replays scans.
type HistoryService interface {
	Record(ctx context.Context, link string, ref domain.GitHubReference, urls []string, truncated bool) (domain.ScanRecord, error)
	List(ctx context.Context, limit int) ([]domain.ScanRecord, error)
	Get(ctx context.Context, id string) (*domain.ScanRecord, error)
	Delete(ctx context.Context, id string) error
}
