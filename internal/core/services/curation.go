package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
	"github.com/custodia-labs/gittable/internal/logger"
)

// Ensure CurationService implements the interface.
var _ driving.CurationService = (*CurationService)(nil)

// CurationService owns one ordered image list and its single scan slot.
//
// Every wholesale replacement of the list (Scan, Load, Restore) bumps a
// generation counter. A scan only applies its result if the generation it
// started under is still current, so a superseded scan can never
// overwrite newer state even if its network call already completed.
type CurationService struct {
	scanner   driving.ScanService
	settings  driving.SettingsService
	renderers driven.RendererRegistry
	history   driving.HistoryService

	mu         sync.Mutex
	list       *domain.ImageList
	config     domain.RenderConfig
	link       string
	ref        domain.GitHubReference
	truncated  bool
	generation uint64
	cancelScan context.CancelFunc
}

// NewCurationService creates a curation session. history may be nil.
// The initial layout comes from the saved gallery settings.
func NewCurationService(
	scanner driving.ScanService,
	settings driving.SettingsService,
	renderers driven.RendererRegistry,
	history driving.HistoryService,
) *CurationService {
	s := &CurationService{
		scanner:   scanner,
		settings:  settings,
		renderers: renderers,
		history:   history,
		list:      domain.NewImageList(),
		config:    domain.DefaultSettings().Gallery,
	}
	if settings != nil {
		if cfg, err := settings.Get(); err == nil {
			s.config = cfg.Gallery.Clamp()
		}
	}
	return s
}

// Scan enumerates link and replaces the list with the result.
func (s *CurationService) Scan(ctx context.Context, link string) (domain.ScanResult, error) {
	token := s.token()

	s.mu.Lock()
	if s.cancelScan != nil {
		s.cancelScan()
	}
	s.generation++
	gen := s.generation
	scanCtx, cancel := context.WithCancel(ctx)
	s.cancelScan = cancel
	s.mu.Unlock()
	defer cancel()

	result, err := s.scanner.Enumerate(scanCtx, link, token)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		logger.Debug("discarding superseded scan of %s", link)
		return domain.ScanResult{}, fmt.Errorf("superseded scan: %w", domain.ErrCancelled)
	}
	s.cancelScan = nil
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, context.Canceled) {
			return domain.ScanResult{}, fmt.Errorf("scan: %w", domain.ErrCancelled)
		}
		return domain.ScanResult{}, err
	}
	s.list.Load(result.URLs)
	s.link = link
	s.ref = result.Reference
	s.truncated = result.Truncated
	s.mu.Unlock()

	if s.history != nil && len(result.URLs) > 0 {
		if _, err := s.history.Record(ctx, link, result.Reference, result.URLs, result.Truncated); err != nil {
			logger.Warn("record scan history: %v", err)
		}
	}
	return result, nil
}

// Load replaces the list without scanning and supersedes any scan in flight.
func (s *CurationService) Load(urls []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
	s.list.Load(urls)
	s.truncated = false
}

// Snapshot returns the current state.
func (s *CurationService) Snapshot() domain.CurationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, ok := s.list.Selected()
	if !ok {
		selected = domain.NoSelection
	}
	return domain.CurationSnapshot{
		Link:      s.link,
		Reference: s.ref,
		Items:     s.list.Items(),
		Selected:  selected,
		CanUndo:   s.list.CanUndo(),
		Truncated: s.truncated,
		Config:    s.config,
		Scanning:  s.cancelScan != nil,
	}
}

// Select highlights index i.
func (s *CurationService) Select(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Select(i)
}

// MoveUp moves entry i towards the top.
func (s *CurationService) MoveUp(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.MoveUp(i)
}

// MoveDown moves entry i towards the bottom.
func (s *CurationService) MoveDown(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.MoveDown(i)
}

// Delete removes entry i.
func (s *CurationService) Delete(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Delete(i)
}

// Undo restores the most recent deletion.
func (s *CurationService) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Undo()
}

// SetColumns sets the table column count, clamped to range.
func (s *CurationService) SetColumns(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.Columns = domain.ClampColumns(n)
}

// SetTitle sets the table title.
func (s *CurationService) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.Title = title
}

// Render renders the current list in format.
func (s *CurationService) Render(format domain.OutputFormat) (string, error) {
	renderer, err := s.renderers.Get(format)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	items := s.list.Items()
	cfg := s.config
	s.mu.Unlock()

	return renderer.Render(items, cfg), nil
}

// SaveHistory stores the current order in scan history.
func (s *CurationService) SaveHistory(ctx context.Context) (domain.ScanRecord, error) {
	if s.history == nil {
		return domain.ScanRecord{}, fmt.Errorf("scan history: %w", domain.ErrNotFound)
	}

	s.mu.Lock()
	link, ref, items, truncated := s.link, s.ref, s.list.Items(), s.truncated
	s.mu.Unlock()

	if len(items) == 0 {
		return domain.ScanRecord{}, fmt.Errorf("save history: %w", domain.ErrNoSelection)
	}
	return s.history.Record(ctx, link, ref, items, truncated)
}

// Restore loads a saved record into the list.
func (s *CurationService) Restore(ctx context.Context, id string) error {
	if s.history == nil {
		return fmt.Errorf("scan history: %w", domain.ErrNotFound)
	}

	record, err := s.history.Get(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
	s.list.Load(record.URLs)
	s.link = record.Link
	s.ref = domain.GitHubReference{Owner: record.Owner, Repo: record.Repo, Ref: record.Ref}
	s.truncated = record.Truncated
	return nil
}

// supersedeLocked cancels any in-flight scan and invalidates its result.
func (s *CurationService) supersedeLocked() {
	if s.cancelScan != nil {
		s.cancelScan()
		s.cancelScan = nil
	}
	s.generation++
}

func (s *CurationService) token() string {
	if s.settings == nil {
		return ""
	}
	cfg, err := s.settings.Get()
	if err != nil {
		logger.Warn("read settings: %v", err)
		return ""
	}
	return cfg.GitHubToken
}
