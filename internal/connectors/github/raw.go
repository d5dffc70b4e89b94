package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/logger"
	"github.com/custodia-labs/gittable/internal/netguard"
)

const (
	// DownloadTimeout bounds each raw download, LFS follow-up included.
	DownloadTimeout = 30 * time.Second

	// MaxImageBytes caps a single download.
	MaxImageBytes = 64 << 20

	// MediaHost serves Git LFS objects behind raw URLs.
	MediaHost = "media.githubusercontent.com"

	lfsPointerPrefix = "version https://git-lfs.github.com/spec/v1"
	lfsPointerMax    = 200
)

// Ensure RawFetcher implements the interface.
var _ driven.ImageFetcher = (*RawFetcher)(nil)

// RawFetcher downloads file contents from allow-listed hosts.
type RawFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewRawFetcher creates a fetcher. base is the transport below the host guard; nil means default.
func NewRawFetcher(base http.RoundTripper) *RawFetcher {
	return &RawFetcher{
		client:  netguard.NewHTTPClient(base, 0),
		timeout: DownloadTimeout,
	}
}

// Fetch returns the body of rawURL, following Git LFS pointers on raw.githubusercontent.com.
func (f *RawFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := netguard.Check(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	data, err := f.get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	if u.Host == domain.RawContentHost && isLFSPointer(data) {
		mediaURL := "https://" + MediaHost + "/media" + u.EscapedPath()
		logger.Debug("raw: %s is a Git LFS pointer, following %s", rawURL, mediaURL)
		return f.get(ctx, mediaURL)
	}
	return data, nil
}

func (f *RawFetcher) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &domain.DownloadError{URL: target, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, domain.ErrBlockedURL) {
			return nil, err
		}
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s", f.timeout)
		}
		return nil, &domain.DownloadError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.DownloadError{URL: target, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, &domain.DownloadError{URL: target, Err: err}
	}
	if len(data) > MaxImageBytes {
		return nil, &domain.DownloadError{URL: target, Err: fmt.Errorf("larger than %d bytes", MaxImageBytes)}
	}
	return data, nil
}

// isLFSPointer reports whether data is a Git LFS pointer file rather than content.
func isLFSPointer(data []byte) bool {
	if len(data) > lfsPointerMax {
		return false
	}
	return strings.HasPrefix(string(bytes.TrimSpace(data)), lfsPointerPrefix)
}
