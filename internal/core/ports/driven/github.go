package driven

import (
	"context"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// RepositoryFetcher reads repository structure from GitHub.
// An empty token means unauthenticated requests.
// Caller cancellation surfaces as domain.ErrCancelled; every other
// failure wraps domain.ErrGitHubAPI.
type RepositoryFetcher interface {
	// FetchRepoMetadata returns the repository's default branch.
	FetchRepoMetadata(ctx context.Context, owner, repo, token string) (domain.RepoMetadata, error)

	// FetchTree returns the recursive tree listing at ref.
	FetchTree(ctx context.Context, owner, repo, ref, token string) (domain.Tree, error)
}

// ImageFetcher downloads raw bytes from an allow-listed URL.
type ImageFetcher interface {
	// Fetch returns the response body. Non-2xx responses fail with
	// *domain.DownloadError; disallowed URLs with domain.ErrBlockedURL.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
