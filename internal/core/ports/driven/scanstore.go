package driven

import (
	"context"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// ScanStore persists scan history.
type ScanStore interface {
	// Save creates or replaces a record.
	Save(ctx context.Context, record domain.ScanRecord) error

	// Get returns a record by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.ScanRecord, error)

	// List returns the newest records first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.ScanRecord, error)

	// Delete removes a record. Missing records are not an error.
	Delete(ctx context.Context, id string) error
}
