package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
	"github.com/custodia-labs/gittable/internal/logger"
	"github.com/custodia-labs/gittable/internal/netguard"
)

// DefaultPacing is the pause between items of a batch download.
const DefaultPacing = 120 * time.Millisecond

// maxNameAttempts bounds the " (n)" collision search.
const maxNameAttempts = 10000

// Ensure DownloadService implements the interface.
var _ driving.DownloadService = (*DownloadService)(nil)

// DownloadService saves images under the storage root.
type DownloadService struct {
	fetcher driven.ImageFetcher
	files   driven.FileStore
	pacing  time.Duration
}

// NewDownloadService creates a new download service.
func NewDownloadService(fetcher driven.ImageFetcher, files driven.FileStore) *DownloadService {
	return &DownloadService{
		fetcher: fetcher,
		files:   files,
		pacing:  DefaultPacing,
	}
}

// SetPacing overrides the pause between batch items.
func (s *DownloadService) SetPacing(d time.Duration) {
	s.pacing = d
}

// DownloadOne saves url into destDir and returns the storage-relative path.
func (s *DownloadService) DownloadOne(ctx context.Context, url, destDir string) (string, error) {
	return s.download(ctx, url, destDir, domain.FilenameFromURL(url))
}

// DownloadAll saves urls one at a time in order, counting failures
// instead of stopping on them.
func (s *DownloadService) DownloadAll(
	ctx context.Context, urls []string, destDir string, progress func(domain.DownloadProgress),
) (domain.DownloadSummary, error) {
	dir := domain.SanitizeFolderPath(destDir)
	summary := domain.DownloadSummary{Dir: dir}

	if err := s.ensureDir(dir); err != nil {
		return summary, err
	}

	logger.Section("Download")
	total := len(urls)
	for i, url := range urls {
		if i > 0 {
			if err := sleepContext(ctx, s.pacing); err != nil {
				return summary, fmt.Errorf("download: %w", domain.ErrCancelled)
			}
		}

		name := domain.FilenameFromURL(url)
		if name == "" {
			name = fmt.Sprintf("image-%d", i+1)
		}

		p := domain.DownloadProgress{Index: i + 1, Total: total, URL: url, Filename: name, Outcome: domain.DownloadPending}
		report(progress, p)

		path, err := s.download(ctx, url, dir, name)
		if err != nil {
			summary.Failed++
			p.Outcome, p.Err = domain.DownloadFailure, err
			logger.Warn("download %d/%d failed: %v", i+1, total, err)
		} else {
			summary.OK++
			summary.Paths = append(summary.Paths, path)
			p.Outcome, p.Path = domain.DownloadSaved, path
			logger.Debug("download %d/%d saved %s", i+1, total, path)
		}
		report(progress, p)
	}

	logger.Info("%s", summary.Message())
	return summary, nil
}

func (s *DownloadService) download(ctx context.Context, url, destDir, name string) (string, error) {
	safe, err := netguard.Check(url)
	if err != nil {
		return "", err
	}

	dir := domain.SanitizeFolderPath(destDir)
	if err := s.ensureDir(dir); err != nil {
		return "", err
	}

	data, err := s.fetcher.Fetch(ctx, safe.String())
	if err != nil {
		return "", err
	}

	path, err := s.uniquePath(dir, domain.SanitizeFilename(name))
	if err != nil {
		return "", err
	}
	if err := s.files.WriteFile(path, data); err != nil {
		return "", &domain.DownloadError{URL: url, Err: fmt.Errorf("write %s: %w", path, err)}
	}
	return path, nil
}

func (s *DownloadService) ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := s.files.MkdirAll(dir); err != nil {
		return fmt.Errorf("create folder %s: %w", dir, err)
	}
	return nil
}

// uniquePath picks the first of "name", "stem (1).ext", ... that is free.
func (s *DownloadService) uniquePath(dir, name string) (string, error) {
	for n := 0; n < maxNameAttempts; n++ {
		candidate := domain.JoinStoragePath(dir, domain.CandidateName(name, n))
		exists, err := s.files.Exists(candidate)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", &domain.DownloadError{Err: errors.New("no free filename for " + name)}
}

func report(progress func(domain.DownloadProgress), p domain.DownloadProgress) {
	if progress != nil {
		progress(p)
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
