package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
	"github.com/custodia-labs/gittable/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// ScanService enumerates image files reachable from a GitHub link.
type ScanService struct {
	fetcher driven.RepositoryFetcher
}

// NewScanService creates a new scan service.
func NewScanService(fetcher driven.RepositoryFetcher) *ScanService {
	return &ScanService{fetcher: fetcher}
}

// Enumerate resolves link to a sorted list of raw-content image URLs.
//
// A blob link yields at most one URL. Tree and bare repository links walk
// the recursive tree, keeping blobs under the link's subpath whose
// extension is an image extension. The tree walk is all-or-nothing: any
// fetch failure aborts the scan.
func (s *ScanService) Enumerate(ctx context.Context, link, token string) (domain.ScanResult, error) {
	ref, err := domain.ParseReference(link)
	if err != nil {
		return domain.ScanResult{}, err
	}

	logger.Section("Scan")
	logger.Debug("link: %s", ref)

	if !ref.HasRef() {
		meta, err := s.fetcher.FetchRepoMetadata(ctx, ref.Owner, ref.Repo, token)
		if err != nil {
			return domain.ScanResult{}, fmt.Errorf("resolve default branch: %w", err)
		}
		ref = ref.WithRef(meta.DefaultBranch)
		logger.Debug("default branch: %s", meta.DefaultBranch)
	}

	if ref.Kind == domain.RefKindBlob && ref.Subpath != "" {
		result := domain.ScanResult{Reference: ref}
		if domain.IsImagePath(ref.Subpath) {
			result.URLs = []string{ref.RawURL(ref.Subpath)}
		}
		logger.Info("blob link: %d image(s)", len(result.URLs))
		return result, nil
	}

	tree, err := s.fetcher.FetchTree(ctx, ref.Owner, ref.Repo, ref.Ref, token)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("fetch tree: %w", err)
	}

	prefix := ""
	if ref.Subpath != "" {
		prefix = strings.TrimRight(ref.Subpath, "/") + "/"
	}

	urls := make([]string, 0)
	for _, e := range tree.Entries {
		if e.Type != domain.TreeEntryBlob || e.Path == "" {
			continue
		}
		if !strings.HasPrefix(e.Path, prefix) || !domain.IsImagePath(e.Path) {
			continue
		}
		urls = append(urls, ref.RawURL(e.Path))
	}
	sort.Strings(urls)

	logger.Info("tree: %d entries, %d image(s), truncated=%v", len(tree.Entries), len(urls), tree.Truncated)
	if tree.Truncated {
		logger.Warn("%s", domain.TruncatedNotice)
	}

	return domain.ScanResult{Reference: ref, URLs: urls, Truncated: tree.Truncated}, nil
}
