package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService records scans and saved curated orders.
type HistoryService struct {
	store driven.ScanStore
	now   func() time.Time
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.ScanStore) *HistoryService {
	return &HistoryService{store: store, now: time.Now}
}

// Record stores urls under a new ID.
func (s *HistoryService) Record(
	ctx context.Context, link string, ref domain.GitHubReference, urls []string, truncated bool,
) (domain.ScanRecord, error) {
	record := domain.ScanRecord{
		ID:        uuid.New().String(),
		Link:      link,
		Owner:     ref.Owner,
		Repo:      ref.Repo,
		Ref:       ref.Ref,
		Truncated: truncated,
		URLs:      append([]string(nil), urls...),
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return domain.ScanRecord{}, fmt.Errorf("save scan record: %w", err)
	}
	return record, nil
}

// List returns the newest records first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	return s.store.List(ctx, limit)
}

// Get returns a record by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.ScanRecord, error) {
	return s.store.Get(ctx, id)
}

// Delete removes a record.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
